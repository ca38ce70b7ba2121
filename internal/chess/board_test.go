package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardStartingPositionHasTwentyLegalMoves(t *testing.T) {
	b := NewBoard()
	legal := b.GenerateLegalMoves(White)
	assert.Len(t, legal, 20)
}

func TestNewBoardSideToMoveAlternatesByPly(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, White, b.SideToMove())

	legal := b.GenerateLegalMoves(White)
	rec := b.Apply(legal[0])
	assert.Equal(t, Black, b.SideToMove())
	b.Undo(rec)
	assert.Equal(t, White, b.SideToMove())
}

func TestKingSquareFindsBothKings(t *testing.T) {
	b := NewBoard()
	wf, wr, ok := b.KingSquare(White)
	require.True(t, ok)
	assert.Equal(t, 4, wf)
	assert.Equal(t, 7, wr)

	bf, br, ok := b.KingSquare(Black)
	require.True(t, ok)
	assert.Equal(t, 4, bf)
	assert.Equal(t, 0, br)
}

func TestEqualsQuickIgnoresCastlingRights(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	b.whiteCanCastleKingSide = false

	assert.True(t, a.Equals(b, true))
	assert.False(t, a.Equals(b, false))
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Clone()

	legal := b.GenerateLegalMoves(White)
	b.Apply(legal[0])

	assert.True(t, c.Equals(NewBoard(), false))
	assert.False(t, b.Equals(c, true))
}
