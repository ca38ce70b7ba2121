package chess

// pawnAdvanceDir returns the rank delta a pawn of color c moves by:
// White advances toward rank index 0, Black toward rank index 7.
func pawnAdvanceDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func pawnStartRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func pawnPromotionRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

var rookDirs = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
var bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// SquareAttackedBy reports whether any piece of color `by` attacks
// (file, rank). Checked in order: pawns, knights, rook/queen rays,
// bishop/queen rays, adjacent king.
func (b *Board) SquareAttackedBy(file, rank int, by Color) bool {
	// Pawn attacks: offsets depend on attacker color.
	pawnFromRank := rank - 1
	if by == White {
		pawnFromRank = rank + 1
	}
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if onBoard(f, pawnFromRank) && b.IsAt(f, pawnFromRank, Pawn, by) {
			return true
		}
	}

	for _, o := range knightOffsets {
		f, r := file+o[0], rank+o[1]
		if onBoard(f, r) && b.IsAt(f, r, Knight, by) {
			return true
		}
	}

	for _, d := range rookDirs {
		if b.slidingAttack(file, rank, d[0], d[1], by, Rook, Queen) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if b.slidingAttack(file, rank, d[0], d[1], by, Bishop, Queen) {
			return true
		}
	}

	for _, o := range kingOffsets {
		f, r := file+o[0], rank+o[1]
		if onBoard(f, r) && b.IsAt(f, r, King, by) {
			return true
		}
	}

	return false
}

// slidingAttack walks outward from (file,rank) along (df,dr), stopping
// at the first occupied square, which is then examined.
func (b *Board) slidingAttack(file, rank, df, dr int, by Color, kind1, kind2 PieceKind) bool {
	f, r := file+df, rank+dr
	for onBoard(f, r) {
		p := b.squares[f][r]
		if !p.IsEmpty() {
			return p.Color == by && (p.Kind == kind1 || p.Kind == kind2)
		}
		f += df
		r += dr
	}
	return false
}

// KingInCheck reports whether color's king is attacked. A missing king
// is a fatal invariant violation (I1); callers should never see one in
// a reachable position, but this returns true defensively rather than
// panicking so state-machine callers stay total.
func (b *Board) KingInCheck(c Color) bool {
	f, r, ok := b.KingSquare(c)
	if !ok {
		return true
	}
	return b.SquareAttackedBy(f, r, c.Opponent())
}

// GeneratePseudoLegalMoves enumerates all moves for color c without
// filtering for own-king safety.
func (b *Board) GeneratePseudoLegalMoves(c Color) []Move {
	moves := make([]Move, 0, 48)
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			p := b.squares[f][r]
			if p.IsEmpty() || p.Color != c {
				continue
			}
			switch p.Kind {
			case Pawn:
				moves = b.genPawnMoves(f, r, c, moves)
			case Knight:
				moves = b.genStepMoves(f, r, c, knightOffsets[:], moves)
			case Bishop:
				moves = b.genSlidingMoves(f, r, c, bishopDirs[:], moves)
			case Rook:
				moves = b.genSlidingMoves(f, r, c, rookDirs[:], moves)
			case Queen:
				moves = b.genSlidingMoves(f, r, c, append(append([][2]int{}, rookDirs[:]...), bishopDirs[:]...), moves)
			case King:
				moves = b.genKingMoves(f, r, c, moves)
			}
		}
	}
	return moves
}

func (b *Board) genPawnMoves(file, rank int, c Color, moves []Move) []Move {
	dir := pawnAdvanceDir(c)
	startRank := pawnStartRank(c)
	promoRank := pawnPromotionRank(c)

	appendPawnMove := func(toFile, toRank int) []Move {
		if toRank == promoRank {
			moves = append(moves,
				NewMove(file, rank, toFile, toRank, Queen, c),
				NewMove(file, rank, toFile, toRank, Knight, c))
		} else {
			moves = append(moves, NewMove(file, rank, toFile, toRank, NoKind, c))
		}
		return moves
	}

	// Single push.
	oneRank := rank + dir
	if onBoard(file, oneRank) && b.IsEmpty(file, oneRank) {
		moves = appendPawnMove(file, oneRank)

		// Double push from the starting rank; both squares must be empty.
		twoRank := rank + 2*dir
		if rank == startRank && b.IsEmpty(file, twoRank) {
			moves = append(moves, NewMove(file, rank, file, twoRank, NoKind, c))
		}
	}

	// Diagonal captures, including en passant.
	epFile := b.EnPassantFile(c)
	for _, df := range [2]int{-1, 1} {
		toFile, toRank := file+df, rank+dir
		if !onBoard(toFile, toRank) {
			continue
		}
		target := b.squares[toFile][toRank]
		isEnemy := !target.IsEmpty() && target.Color != c
		isEnPassant := epFile == toFile && toFile != NoEnPassantFile && rankForEnPassantCapture(c) == rank
		if isEnemy {
			moves = appendPawnMove(toFile, toRank)
		} else if isEnPassant && target.IsEmpty() {
			moves = append(moves, NewMove(file, rank, toFile, toRank, NoKind, c))
		}
	}

	return moves
}

// rankForEnPassantCapture is the rank a pawn must stand on to use its
// color's en-passant file: rank index 3 (the 5th rank) for White,
// rank index 4 (the 4th rank) for Black.
func rankForEnPassantCapture(c Color) int {
	if c == White {
		return 3
	}
	return 4
}

func (b *Board) genStepMoves(file, rank int, c Color, offsets [][2]int, moves []Move) []Move {
	for _, o := range offsets {
		f, r := file+o[0], rank+o[1]
		if !onBoard(f, r) {
			continue
		}
		target := b.squares[f][r]
		if target.IsEmpty() || target.Color != c {
			moves = append(moves, NewMove(file, rank, f, r, NoKind, c))
		}
	}
	return moves
}

func (b *Board) genSlidingMoves(file, rank int, c Color, dirs [][2]int, moves []Move) []Move {
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for onBoard(f, r) {
			target := b.squares[f][r]
			if target.IsEmpty() {
				moves = append(moves, NewMove(file, rank, f, r, NoKind, c))
			} else {
				if target.Color != c {
					moves = append(moves, NewMove(file, rank, f, r, NoKind, c))
				}
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return moves
}

func (b *Board) genKingMoves(file, rank int, c Color, moves []Move) []Move {
	moves = b.genStepMoves(file, rank, c, kingOffsets[:], moves)

	them := c.Opponent()
	homeRank := 7
	if c == Black {
		homeRank = 0
	}
	if rank != homeRank || file != 4 {
		return moves
	}

	if b.CanCastleKingSide(c) &&
		b.IsEmpty(5, homeRank) && b.IsEmpty(6, homeRank) &&
		!b.SquareAttackedBy(4, homeRank, them) &&
		!b.SquareAttackedBy(5, homeRank, them) &&
		!b.SquareAttackedBy(6, homeRank, them) {
		moves = append(moves, NewMove(4, homeRank, 6, homeRank, NoKind, c))
	}
	if b.CanCastleQueenSide(c) &&
		b.IsEmpty(1, homeRank) && b.IsEmpty(2, homeRank) && b.IsEmpty(3, homeRank) &&
		!b.SquareAttackedBy(4, homeRank, them) &&
		!b.SquareAttackedBy(3, homeRank, them) &&
		!b.SquareAttackedBy(2, homeRank, them) {
		moves = append(moves, NewMove(4, homeRank, 2, homeRank, NoKind, c))
	}

	return moves
}

// GenerateLegalMoves filters pseudo-legal moves for own-king safety and,
// as a side effect of the apply/undo probe, marks GivesCheck on the
// surviving moves.
func (b *Board) GenerateLegalMoves(c Color) []Move {
	pseudo := b.GeneratePseudoLegalMoves(c)
	legal := make([]Move, 0, len(pseudo))

	for _, m := range pseudo {
		_, isCastling, isEnPassant := b.classifyMove(m)
		record := b.Apply(m)
		if !b.KingInCheck(c) {
			m.Flags.IsCastling = isCastling
			m.Flags.IsEnPassant = isEnPassant
			m.Flags.GivesCheck = b.KingInCheck(c.Opponent())
			legal = append(legal, m)
		}
		b.Undo(record)
	}

	return legal
}
