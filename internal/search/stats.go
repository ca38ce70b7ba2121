package search

// Stats accumulates counters for a single worker's slice of the root
// move list. The root driver combines every worker's Stats after all
// have joined; nothing here is shared or synchronized mid-search.
type Stats struct {
	NodesVisited  int
	Cutoffs       int
	CheckExtends  int
	QuiesceLines  int
}

func (s *Stats) combine(other Stats) {
	s.NodesVisited += other.NodesVisited
	s.Cutoffs += other.Cutoffs
	s.CheckExtends += other.CheckExtends
	s.QuiesceLines += other.QuiesceLines
}
