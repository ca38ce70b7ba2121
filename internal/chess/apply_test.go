package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyUndoRoundTripFromStartingPosition(t *testing.T) {
	b := NewBoard()
	before := b.Clone()

	legal := b.GenerateLegalMoves(White)
	for _, m := range legal[:5] {
		rec := b.Apply(m)
		b.Undo(rec)
		assert.True(t, b.Equals(before, false), "round trip for %s should restore the exact position", m)
	}
}

func emptyBoardWithKings() *Board {
	b := NewBoard()
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			b.Clear(f, r)
		}
	}
	b.Set(4, 7, Piece{Kind: King, Color: White})
	b.Set(4, 0, Piece{Kind: King, Color: Black})
	b.whiteCanCastleKingSide, b.whiteCanCastleQueenSide = false, false
	b.blackCanCastleKingSide, b.blackCanCastleQueenSide = false, false
	b.whiteEnPassantFile, b.blackEnPassantFile = NoEnPassantFile, NoEnPassantFile
	return b
}

// A rook captured on its home corner must revoke castling rights for
// the rook's own color, not for the color that captured it.
func TestRookCapturedOnCornerRevokesCapturedSidesRights(t *testing.T) {
	b := emptyBoardWithKings()
	b.Set(0, 7, Piece{Kind: Rook, Color: White})
	b.Set(1, 6, Piece{Kind: Queen, Color: Black})
	b.whiteCanCastleQueenSide = true
	b.blackCanCastleQueenSide = true

	rec := b.Apply(NewMove(1, 6, 0, 7, NoKind, Black))

	assert.False(t, b.whiteCanCastleQueenSide, "white loses queenside rights when its rook is captured")
	assert.True(t, b.blackCanCastleQueenSide, "capturing does not touch the capturer's own rights")

	b.Undo(rec)
	assert.True(t, b.whiteCanCastleQueenSide)
	assert.True(t, b.blackCanCastleQueenSide)
}

func TestEnPassantCaptureAndUndo(t *testing.T) {
	b := emptyBoardWithKings()
	b.Set(4, 1, Piece{Kind: Pawn, Color: Black})
	b.Set(3, 3, Piece{Kind: Pawn, Color: White})
	before := b.Clone()

	doublePush := b.Apply(NewMove(4, 1, 4, 3, NoKind, Black))
	require.Equal(t, 4, b.whiteEnPassantFile)

	capture := b.Apply(NewMove(3, 3, 4, 2, NoKind, White))
	assert.True(t, b.IsEmpty(4, 3), "captured pawn is removed")
	assert.True(t, b.IsAt(4, 2, Pawn, White))
	assert.Len(t, b.CapturedBy(White), 1)

	b.Undo(capture)
	b.Undo(doublePush)
	assert.True(t, b.Equals(before, false))
}

func TestPromotionOnlyOffersQueenAndKnight(t *testing.T) {
	b := emptyBoardWithKings()
	b.Set(0, 1, Piece{Kind: Pawn, Color: White})

	legal := b.GenerateLegalMoves(White)
	promos := map[PieceKind]bool{}
	for _, m := range legal {
		if m.ToFile == 0 && m.ToRank == 0 {
			promos[m.Promotion] = true
		}
	}

	assert.True(t, promos[Queen])
	assert.True(t, promos[Knight])
	assert.False(t, promos[Rook])
	assert.False(t, promos[Bishop])
	assert.Len(t, promos, 2)
}

func TestCastlingMovesRookAndClearsRights(t *testing.T) {
	b := emptyBoardWithKings()
	b.Set(0, 7, Piece{Kind: Rook, Color: White})
	b.Set(7, 7, Piece{Kind: Rook, Color: White})
	b.whiteCanCastleKingSide = true
	b.whiteCanCastleQueenSide = true

	rec := b.Apply(NewMove(4, 7, 6, 7, NoKind, White))

	assert.True(t, b.IsAt(6, 7, King, White))
	assert.True(t, b.IsAt(5, 7, Rook, White))
	assert.True(t, b.IsEmpty(7, 7))
	assert.False(t, b.whiteCanCastleKingSide)
	assert.False(t, b.whiteCanCastleQueenSide)

	b.Undo(rec)
	assert.True(t, b.IsAt(4, 7, King, White))
	assert.True(t, b.IsAt(7, 7, Rook, White))
	assert.True(t, b.whiteCanCastleKingSide)
}

func TestCastlingBlockedWhenTransitSquareAttacked(t *testing.T) {
	b := emptyBoardWithKings()
	b.Set(0, 7, Piece{Kind: Rook, Color: White})
	b.Set(7, 7, Piece{Kind: Rook, Color: White})
	b.whiteCanCastleKingSide = true
	// Black rook rakes the f1 transit square (file 5, rank 7).
	b.Set(5, 0, Piece{Kind: Rook, Color: Black})

	legal := b.GenerateLegalMoves(White)
	for _, m := range legal {
		assert.False(t, m.FromFile == 4 && m.ToFile == 6, "king-side castle must be illegal through an attacked square")
	}
}
