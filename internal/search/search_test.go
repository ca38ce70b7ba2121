package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chessgo/internal/chess"
)

func TestSearchReturnsALegalMoveAtMinDepth(t *testing.T) {
	b := chess.NewBoard()
	legal := b.GenerateLegalMoves(b.SideToMove())

	start := time.Now()
	result, err := Search(context.Background(), b, Options{Depth: MinPly, Workers: 2})
	elapsed := time.Since(start)
	require.NoError(t, err)

	t.Logf("depth %d: move=%s score=%d nodes=%d time=%v", MinPly, result.Move, result.Score, result.Stats.NodesVisited, elapsed)

	found := false
	for _, m := range legal {
		if m.Equal(result.Move) {
			found = true
		}
	}
	assert.True(t, found, "search must return a move from the legal list")
}

func TestSearchSingleLegalMoveSkipsSearch(t *testing.T) {
	b := chess.NewBoard()
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			b.Clear(f, r)
		}
	}
	b.Set(0, 7, chess.Piece{Kind: chess.King, Color: chess.White})
	b.Set(4, 0, chess.Piece{Kind: chess.King, Color: chess.Black})
	b.Set(1, 5, chess.Piece{Kind: chess.Rook, Color: chess.Black})
	// White king boxed into a corner with exactly one legal move.

	result, err := Search(context.Background(), b, Options{Depth: MinPly, Workers: 4})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.NodesVisited, "a single legal move should bypass search entirely")
}

func TestSearchErrorsWithNoLegalMoves(t *testing.T) {
	b := chess.NewBoard()
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			b.Clear(f, r)
		}
	}
	b.Set(0, 0, chess.Piece{Kind: chess.King, Color: chess.Black})
	b.Set(2, 2, chess.Piece{Kind: chess.King, Color: chess.White})
	b.Set(1, 2, chess.Piece{Kind: chess.Queen, Color: chess.White})
	b.Apply(chess.NewMove(1, 2, 1, 1, chess.NoKind, chess.White))
	// Corner mate: black king on a8, white queen on b7 defended by the
	// white king on c6 — black to move, no legal moves.

	_, err := Search(context.Background(), b, Options{Depth: MinPly, Workers: 2})
	assert.ErrorIs(t, err, ErrNoLegalMoves)
}

func TestPartitionPreservesAllMovesAndOrder(t *testing.T) {
	b := chess.NewBoard()
	legal := b.GenerateLegalMoves(b.SideToMove())

	chunks := partition(legal, 3)
	var flattened []chess.Move
	for _, c := range chunks {
		flattened = append(flattened, c...)
	}
	assert.Equal(t, legal, flattened)
}
