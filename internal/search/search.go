package search

import (
	"sort"

	"chessgo/internal/chess"
)

// worker carries the per-goroutine state a single alpha-beta search
// needs: its own board to mutate via do/undo, its own killer table, and
// its own stats sink. Workers never share alpha/beta with one another.
type worker struct {
	board   *chess.Board
	killers *killerTable
	stats   Stats
}

func newWorker(board *chess.Board, maxPly int) *worker {
	return &worker{board: board, killers: newKillerTable(maxPly)}
}

// searchRoot evaluates a single root move to the requested depth and
// returns its score, from White's-perspective-absolute convention.
func (w *worker) searchRoot(move chess.Move, depth int) int {
	rec := w.board.Apply(move)
	defer w.board.Undo(rec)
	return w.alphaBeta(depth, 0, 1, 0, chess.MateLoss, chess.MateWin)
}

// alphaBeta searches depth plies (plus any check-extension already
// spent, tracked via extraPly) from the current board position, which
// the caller has already applied the move leading into. Scores are
// absolute: White maximizes, Black minimizes.
func (w *worker) alphaBeta(depth, extraPly, ply, quiescenceScore, alpha, beta int) int {
	w.stats.NodesVisited++

	side := w.board.SideToMove()
	legal := w.board.GenerateLegalMoves(side)
	state := w.board.RefreshState(legal)

	switch state {
	case chess.WhiteWins:
		return chess.MateWin
	case chess.BlackWins:
		return chess.MateLoss
	case chess.Stalemate, chess.Draw:
		return 0
	}

	inCheck := w.board.KingInCheck(side)

	if depth <= 0 {
		calm := quiescenceScore <= QuiescenceThreshold || !anyCapture(w.board, legal)
		if calm {
			return w.board.Evaluate()
		}
		w.stats.QuiesceLines++
	}

	orderMoves(w.board, legal, w.killers.moves(ply))

	best := chess.MateLoss
	if side == chess.Black {
		best = chess.MateWin
	}

	for _, m := range legal {
		captured := anyCaptureMove(w.board, m)
		nextQS := quiescenceScore / 2
		if captured {
			nextQS += QuiescencePenaltyCapture
		}

		nextDepth := depth - 1
		nextExtra := extraPly
		if inCheck && extraPly < MaxExtraPly {
			nextDepth = depth
			nextExtra = extraPly + 1
			w.stats.CheckExtends++
		}

		rec := w.board.Apply(m)
		score := w.alphaBeta(nextDepth, nextExtra, ply+1, nextQS, alpha, beta)
		w.board.Undo(rec)

		if side == White {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}

		if beta <= alpha {
			w.stats.Cutoffs++
			w.killers.record(ply, m)
			break
		}
	}

	return best
}

// anyCaptureMove reports whether m, not yet applied, is a capture
// (including en passant).
func anyCaptureMove(board *chess.Board, m chess.Move) bool {
	if m.Flags.IsEnPassant {
		return true
	}
	return !board.IsEmpty(m.ToFile, m.ToRank)
}

func anyCapture(board *chess.Board, moves []chess.Move) bool {
	for _, m := range moves {
		if anyCaptureMove(board, m) {
			return true
		}
	}
	return false
}

// orderMoves sorts legal in place: killer moves for this ply first,
// then captures ranked by victim value (a cheap stand-in for MVV/LVA),
// then everything else in generation order.
func orderMoves(board *chess.Board, legal []chess.Move, killers []chess.Move) {
	rank := func(m chess.Move) int {
		for i, k := range killers {
			if k.Equal(m) {
				return -10000 + i
			}
		}
		if m.Flags.IsEnPassant {
			return -10
		}
		if target := board.PieceAt(m.ToFile, m.ToRank); !target.IsEmpty() {
			return -target.Kind.Value()
		}
		return 0
	}

	sort.SliceStable(legal, func(i, j int) bool {
		return rank(legal[i]) < rank(legal[j])
	})
}
