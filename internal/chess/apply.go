package chess

// classifyMove inspects the board to determine facts about m that are
// only knowable before it is applied.
func (b *Board) classifyMove(m Move) (mover Piece, isCastling, isEnPassant bool) {
	mover = b.squares[m.FromFile][m.FromRank]
	isCastling = mover.Kind == King && abs(m.ToFile-m.FromFile) == 2
	isEnPassant = mover.Kind == Pawn && m.ToFile != m.FromFile && b.squares[m.ToFile][m.ToRank].IsEmpty()
	return
}

// Apply mutates b to reflect m and returns the record needed to reverse
// it exactly with Undo. The single board is reused throughout search;
// nothing here allocates a new position.
func (b *Board) Apply(m Move) UndoRecord {
	mover, isCastling, isEnPassant := b.classifyMove(m)
	color := mover.Color

	rec := UndoRecord{
		FromFile: m.FromFile, FromRank: m.FromRank,
		ToFile: m.ToFile, ToRank: m.ToRank,
		HitPiece: NoPiece,

		whiteCanCastleKingSide:  b.whiteCanCastleKingSide,
		whiteCanCastleQueenSide: b.whiteCanCastleQueenSide,
		blackCanCastleKingSide:  b.blackCanCastleKingSide,
		blackCanCastleQueenSide: b.blackCanCastleQueenSide,
		whiteEnPassantFile:      b.whiteEnPassantFile,
		blackEnPassantFile:      b.blackEnPassantFile,
		prevFiftyMoveCount:      b.fiftyMoveCount,

		IsCastling:  isCastling,
		IsEnPassant: isEnPassant,
	}

	// 1. Identify and remove the captured piece, if any.
	if isEnPassant {
		rec.HitRank = m.FromRank
		rec.HitPiece = b.squares[m.ToFile][m.FromRank]
		b.Clear(m.ToFile, m.FromRank)
	} else if target := b.squares[m.ToFile][m.ToRank]; !target.IsEmpty() {
		rec.HitRank = m.ToRank
		rec.HitPiece = target
	}
	captured := rec.HitPiece.Kind != NoKind
	if captured {
		if color == White {
			b.blackCaptured = append(b.blackCaptured, rec.HitPiece)
		} else {
			b.whiteCaptured = append(b.whiteCaptured, rec.HitPiece)
		}
	}

	// 2. Update castling rights for a king or rook move, and for a rook
	// captured on its home corner. Both rook cases key off the rook's
	// own color: a moving rook revokes its owner's right, and a captured
	// rook revokes the CAPTURED side's right, not the capturer's.
	if mover.Kind == King {
		if color == White {
			b.whiteCanCastleKingSide, b.whiteCanCastleQueenSide = false, false
		} else {
			b.blackCanCastleKingSide, b.blackCanCastleQueenSide = false, false
		}
	}
	if mover.Kind == Rook {
		revokeCornerRights(b, color, m.FromFile, m.FromRank)
	}
	if captured && rec.HitPiece.Kind == Rook {
		revokeCornerRights(b, rec.HitPiece.Color, m.ToFile, m.ToRank)
	}

	// 3. Move the piece, promoting if applicable.
	b.Clear(m.FromFile, m.FromRank)
	placed := mover
	if m.Promotion != NoKind {
		placed = Piece{Kind: m.Promotion, Color: color}
		rec.IsPromotion = true
	}
	b.Set(m.ToFile, m.ToRank, placed)

	// 4. Move the rook when castling.
	if isCastling {
		homeRank := m.FromRank
		if m.ToFile == 6 {
			rook := b.squares[7][homeRank]
			b.Clear(7, homeRank)
			b.Set(5, homeRank, rook)
		} else {
			rook := b.squares[0][homeRank]
			b.Clear(0, homeRank)
			b.Set(3, homeRank, rook)
		}
	}

	// 5. Set or clear the en-passant file for the opponent's next move.
	b.whiteEnPassantFile = NoEnPassantFile
	b.blackEnPassantFile = NoEnPassantFile
	if mover.Kind == Pawn && abs(m.ToRank-m.FromRank) == 2 {
		if color == White {
			b.blackEnPassantFile = m.FromFile
		} else {
			b.whiteEnPassantFile = m.FromFile
		}
	}

	// 6. Advance the fifty-move counter, resetting on pawn moves and captures.
	if mover.Kind == Pawn || captured {
		b.fiftyMoveCount = 0
	} else {
		b.fiftyMoveCount++
	}

	// 7. Advance the ply and record the resulting position for repetition detection.
	b.plyCount++
	b.recordPosition()

	return rec
}

// revokeCornerRights clears c's castling right on whichever side
// (file, rank) names, if it names a home-corner square at all.
func revokeCornerRights(b *Board, c Color, file, rank int) {
	homeRank := 7
	if c == Black {
		homeRank = 0
	}
	if rank != homeRank {
		return
	}
	switch file {
	case 0:
		if c == White {
			b.whiteCanCastleQueenSide = false
		} else {
			b.blackCanCastleQueenSide = false
		}
	case 7:
		if c == White {
			b.whiteCanCastleKingSide = false
		} else {
			b.blackCanCastleKingSide = false
		}
	}
}

// Undo reverses the last Apply exactly, restoring every field the
// record carries.
func (b *Board) Undo(rec UndoRecord) {
	b.dropLastPosition()
	b.plyCount--
	b.fiftyMoveCount = rec.prevFiftyMoveCount

	b.whiteCanCastleKingSide = rec.whiteCanCastleKingSide
	b.whiteCanCastleQueenSide = rec.whiteCanCastleQueenSide
	b.blackCanCastleKingSide = rec.blackCanCastleKingSide
	b.blackCanCastleQueenSide = rec.blackCanCastleQueenSide
	b.whiteEnPassantFile = rec.whiteEnPassantFile
	b.blackEnPassantFile = rec.blackEnPassantFile

	moved := b.squares[rec.ToFile][rec.ToRank]
	if rec.IsPromotion {
		moved.Kind = Pawn
	}
	b.Clear(rec.ToFile, rec.ToRank)
	b.Set(rec.FromFile, rec.FromRank, moved)

	if rec.IsCastling {
		homeRank := rec.FromRank
		if rec.ToFile == 6 {
			rook := b.squares[5][homeRank]
			b.Clear(5, homeRank)
			b.Set(7, homeRank, rook)
		} else {
			rook := b.squares[3][homeRank]
			b.Clear(3, homeRank)
			b.Set(0, homeRank, rook)
		}
	}

	if rec.HitPiece.Kind != NoKind {
		b.Set(rec.ToFile, rec.HitRank, rec.HitPiece)
		if rec.HitPiece.Color == White {
			b.whiteCaptured = b.whiteCaptured[:len(b.whiteCaptured)-1]
		} else {
			b.blackCaptured = b.blackCaptured[:len(b.blackCaptured)-1]
		}
	}
}
