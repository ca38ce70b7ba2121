package chess

import "math/rand"

// Zobrist hashing gives each position a fast, deterministic fingerprint
// so repetition detection can reject most candidates with a uint64
// comparison before falling back to a full snapshot comparison.
var (
	zobristPieces     [2][7][8][8]uint64 // color x kind x file x rank
	zobristCastling   [16]uint64
	zobristEnPassant  [2][8]uint64 // color x file
	zobristSideToMove uint64
)

func init() {
	// Fixed seed: the hash must be reproducible across runs, not just
	// within one process.
	rng := rand.New(rand.NewSource(0x1234567890ABCDEF))

	for c := 0; c < 2; c++ {
		for k := 0; k < 7; k++ {
			for f := 0; f < 8; f++ {
				for r := 0; r < 8; r++ {
					zobristPieces[c][k][f][r] = rng.Uint64()
				}
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for c := 0; c < 2; c++ {
		for f := 0; f < 8; f++ {
			zobristEnPassant[c][f] = rng.Uint64()
		}
	}
	zobristSideToMove = rng.Uint64()
}

func castlingIndex(b *Board) int {
	i := 0
	if b.whiteCanCastleKingSide {
		i |= 1
	}
	if b.whiteCanCastleQueenSide {
		i |= 2
	}
	if b.blackCanCastleKingSide {
		i |= 4
	}
	if b.blackCanCastleQueenSide {
		i |= 8
	}
	return i
}

// zobristHash computes a deterministic fingerprint of the position,
// covering piece placement, castling rights, en-passant files and side
// to move; the ply and fifty-move counters are not part of it.
func (b *Board) zobristHash() uint64 {
	var h uint64
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			p := b.squares[f][r]
			if p.IsEmpty() {
				continue
			}
			h ^= zobristPieces[p.Color][p.Kind][f][r]
		}
	}
	h ^= zobristCastling[castlingIndex(b)]
	if b.whiteEnPassantFile != NoEnPassantFile {
		h ^= zobristEnPassant[White][b.whiteEnPassantFile]
	}
	if b.blackEnPassantFile != NoEnPassantFile {
		h ^= zobristEnPassant[Black][b.blackEnPassantFile]
	}
	if b.SideToMove() == Black {
		h ^= zobristSideToMove
	}
	return h
}
