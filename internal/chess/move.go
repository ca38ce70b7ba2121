package chess

// MateScore bounds signal forced wins: search returns them for a
// checkmated side and uses them as its initial alpha/beta window. The
// evaluator's static scores stay far inside them; nothing clamps to them.
const (
	MateWin  = 1000000
	MateLoss = -1000000
)

// MoveFlags records the special-move classification and check status of
// a Move. Legality filtering sets is_castling, is_en_passant and
// gives_check; AnnotateOutcome sets gives_check_mate, gives_draw and
// is_evasion once the move has been played.
type MoveFlags struct {
	IsCastling    bool
	IsEnPassant   bool
	GivesCheck    bool
	GivesCheckMate bool
	GivesDraw     bool
	IsEvasion     bool
}

// Move is an immutable description of a legal or pseudo-legal move.
// Score defaults to the worst value for the side making the move, so an
// unassigned leaf never wins a comparison against a scored sibling.
type Move struct {
	FromFile, FromRank int
	ToFile, ToRank     int
	Promotion          PieceKind // NoKind if not a promotion
	Flags              MoveFlags
	Score              int
}

// NewMove builds a Move with Score initialized to the worst value for
// mover (so it loses any comparison until search assigns a real score).
func NewMove(fromFile, fromRank, toFile, toRank int, promotion PieceKind, mover Color) Move {
	score := MateWin
	if mover == White {
		score = MateLoss
	}
	return Move{
		FromFile: fromFile, FromRank: fromRank,
		ToFile: toFile, ToRank: toRank,
		Promotion: promotion,
		Score:     score,
	}
}

// NullMove is the sentinel used as the head of lazily-built move lists
// and as a terminal probe: from == to == (0,0).
var NullMove = Move{}

// IsNull reports whether m is the null-move sentinel.
func (m Move) IsNull() bool {
	return m.FromFile == 0 && m.FromRank == 0 && m.ToFile == 0 && m.ToRank == 0
}

// Equal compares moves by (from, to) only — promotion and flags are
// deliberately ignored, matching the spec's move-identity rule.
func (m Move) Equal(other Move) bool {
	return m.FromFile == other.FromFile && m.FromRank == other.FromRank &&
		m.ToFile == other.ToFile && m.ToRank == other.ToRank
}

// String renders "from-to[promotion]" plain notation, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	files := "abcdefgh"
	ranks := "87654321" // rank index 0 is rank 8, per the board's own convention
	s := string(files[m.FromFile]) + string(ranks[m.FromRank]) +
		string(files[m.ToFile]) + string(ranks[m.ToRank])
	if m.Promotion != NoKind {
		promoChars := map[PieceKind]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}
		s += string(promoChars[m.Promotion])
	}
	return s
}

// UndoRecord carries everything needed to reverse an Apply exactly.
type UndoRecord struct {
	FromFile, FromRank int
	ToFile, ToRank     int

	// HitRank is the rank the captured piece stood on: equal to ToRank
	// for ordinary captures, equal to FromRank for en passant.
	HitRank  int
	HitPiece Piece

	whiteCanCastleKingSide  bool
	whiteCanCastleQueenSide bool
	blackCanCastleKingSide  bool
	blackCanCastleQueenSide bool
	whiteEnPassantFile      int
	blackEnPassantFile      int
	prevFiftyMoveCount      int

	IsPromotion bool
	IsCastling  bool
	IsEnPassant bool
}
