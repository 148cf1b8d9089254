package stipple

import "iter"

// ForcedRuns yields the stretches of the path between forced nodes, in
// path order. Each forced node ends one run and starts the next, so it
// appears in both. The runs are built from fresh nodes carrying only
// position and type.
//
// A closed path with no forced node yields a single closed copy of
// itself. A closed path with forced nodes is walked linearly from its
// first node like an open path; the wrap-around stretch is not rejoined.
//
// Runs at the ends can be degenerate. A path whose last node is forced
// yields a trailing single-node run, and an empty path yields one empty
// run. Degenerate runs have no segments and measure zero length, so
// consumers skip them.
func (p *Path) ForcedRuns() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		if p.Closed && !p.anyForced() {
			yield(p.Clone())
			return
		}
		run := &Path{}
		for _, n := range p.Nodes {
			run.Nodes = append(run.Nodes, NewNode(n.Pos, n.Type))
			if n.IsForced() {
				if !yield(run) {
					return
				}
				run = &Path{Nodes: []*Node{NewNode(n.Pos, n.Type)}}
			}
		}
		yield(run)
	}
}

func (p *Path) anyForced() bool {
	for _, n := range p.Nodes {
		if n.IsForced() {
			return true
		}
	}
	return false
}
