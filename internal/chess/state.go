package chess

// FiftyMoveLimit is the half-move count (100 = 50 full moves) since the
// last capture or pawn move at which a draw is claimed automatically.
const FiftyMoveLimit = 100

// RepetitionLimit is how many times a position must recur (counting the
// first occurrence) before a draw is claimed.
const RepetitionLimit = 3

// RefreshState recomputes the terminal classification for the side to
// move and caches it on the board. legalMoves is the side-to-move's
// legal move list, supplied by the caller so search and the state
// machine don't generate it twice.
func (b *Board) RefreshState(legalMoves []Move) GameState {
	side := b.SideToMove()
	inCheck := b.KingInCheck(side)

	switch {
	case len(legalMoves) == 0 && inCheck:
		if side == White {
			b.state = BlackWins
		} else {
			b.state = WhiteWins
		}
	case len(legalMoves) == 0:
		b.state = Stalemate
	case b.fiftyMoveCount >= FiftyMoveLimit:
		b.state = Draw
	case b.RepetitionCount() >= RepetitionLimit:
		b.state = Draw
	default:
		b.state = Unfinished
	}

	return b.state
}

// IsTerminal reports whether the cached state is anything other than Unfinished.
func (b *Board) IsTerminal() bool {
	return b.state != Unfinished
}
