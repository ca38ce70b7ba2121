// Package search implements fixed-depth alpha-beta search over the
// chess package's board representation: quiescence via a decaying
// noise counter, a bounded check extension, killer-move ordering, and
// a parallel root driver with independent per-worker windows.
package search

// MinPly and MaxPly bound the fixed search depth; callers may request
// any depth in between, nothing is ever cut short on a clock.
const (
	MinPly = 5
	MaxPly = 6
)

// MaxExtraPly bounds how many additional plies a forcing check sequence
// may extend the search by, so check extension can never runaway.
const MaxExtraPly = 2

// QuiescenceThreshold and QuiescencePenaltyCapture drive the noise
// counter that decides whether a depth-exhausted line is calm enough
// to evaluate statically. The counter halves every ply and gains
// QuiescencePenaltyCapture on every capture; while it sits above the
// threshold and the side to move has a capture available, the search
// keeps expanding the line past nominal depth, trying every legal move
// there, not only captures.
const (
	QuiescenceThreshold      = 100
	QuiescencePenaltyCapture = 100
)

// DefaultWorkers is the root driver's worker count when the caller
// doesn't override it.
const DefaultWorkers = 4

// killerSlotSize is the number of moves retained per ply in the killer table.
const killerSlotSize = 2
