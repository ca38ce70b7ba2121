package chess

// AnnotateOutcome fills in the flags that only make sense once a move
// has actually been applied: gives_check_mate, gives_draw, and
// is_evasion. GivesCheck is already set by GenerateLegalMoves itself.
//
// This is deliberately NOT called from inside search's legal-move
// generation: computing the opponent's full legal-move list for every
// candidate at every node would double the branching factor search
// already has to explore. Callers that actually play a move (the CLI,
// a UI) call this once per played move instead.
func (b *Board) AnnotateOutcome(m *Move, moverWasInCheck bool) {
	m.Flags.IsEvasion = moverWasInCheck

	opponent := b.SideToMove()
	opponentLegal := b.GenerateLegalMoves(opponent)
	state := b.RefreshState(opponentLegal)

	m.Flags.GivesCheckMate = state == WhiteWins || state == BlackWins
	m.Flags.GivesDraw = state == Draw || state == Stalemate
}
