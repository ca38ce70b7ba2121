package search

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chessgo/internal/chess"
)

// ErrNoLegalMoves is returned when Search is asked to move in a
// position with no legal moves (checkmate or stalemate already).
var ErrNoLegalMoves = errors.New("search: no legal moves in position")

// Options configures a single call to Search.
type Options struct {
	Depth   int // clamped to [MinPly, MaxPly]
	Workers int // values below 1 use DefaultWorkers; capped at the legal-move count
	Logger  *zap.Logger
}

// Result is what a completed search reports: the chosen move, its
// absolute score, and the combined stats across every root worker.
type Result struct {
	Move  chess.Move
	Score int
	Stats Stats
}

// Search runs the Root Driver: it partitions the side-to-move's legal
// moves into up to Workers independent chunks, searches each chunk to
// Depth plies on its own cloned board with its own killer table and
// stats sink, and picks the best result. Workers never share
// alpha/beta state with one another, trading some search efficiency
// for an embarrassingly parallel, lock-free root split.
func Search(ctx context.Context, board *chess.Board, opts Options) (Result, error) {
	depth := clampDepth(opts.Depth)
	workers := opts.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	side := board.SideToMove()
	legal := board.GenerateLegalMoves(side)
	if len(legal) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	// A lone legal move needs no search at all.
	if len(legal) == 1 {
		logger.Debug("single legal move, skipping search", zap.String("move", legal[0].String()))
		return Result{Move: legal[0], Score: legal[0].Score}, nil
	}

	if workers > len(legal) {
		workers = len(legal)
	}
	chunks := partition(legal, workers)

	results := make([]Result, len(chunks))
	g, gctx := errgroup.WithContext(ctx)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = searchChunk(board.Clone(), chunk, depth)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := combineResults(side, results)
	logger.Info("search complete",
		zap.String("move", best.Move.String()),
		zap.Int("score", best.Score),
		zap.Int("nodes", best.Stats.NodesVisited),
		zap.Int("cutoffs", best.Stats.Cutoffs),
	)
	return best, nil
}

func clampDepth(depth int) int {
	if depth < MinPly {
		return MinPly
	}
	if depth > MaxPly {
		return MaxPly
	}
	return depth
}

// partition splits moves into up to n roughly-equal, order-preserving chunks.
func partition(moves []chess.Move, n int) [][]chess.Move {
	chunks := make([][]chess.Move, 0, n)
	base := len(moves) / n
	rem := len(moves) % n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, moves[start:start+size])
		start += size
	}
	return chunks
}

// searchChunk evaluates every move in chunk on its own board/killer
// table/stats, returning whichever scored best within the chunk.
func searchChunk(board *chess.Board, chunk []chess.Move, depth int) Result {
	w := newWorker(board, depth)
	best := Result{Move: chunk[0], Score: chunk[0].Score}
	first := true

	for _, m := range chunk {
		score := w.searchRoot(m, depth-1)
		m.Score = score
		if first || better(board.SideToMove(), score, best.Score) {
			best = Result{Move: m, Score: score}
			first = false
		}
	}

	best.Stats = w.stats
	return best
}

// better reports whether candidate improves on current for side: higher
// is better for White, lower is better for Black.
func better(side chess.Color, candidate, current int) bool {
	if side == chess.White {
		return candidate > current
	}
	return candidate < current
}

// combineResults merges per-chunk stats and picks the overall best
// move; ties go to whichever chunk result was produced first.
func combineResults(side chess.Color, results []Result) Result {
	combined := results[0].Stats
	for _, r := range results[1:] {
		combined.combine(r.Stats)
	}

	best := results[0]
	for _, r := range results[1:] {
		if better(side, r.Score, best.Score) {
			best = r
		}
	}
	best.Stats = combined
	return best
}
