package stipple

import (
	"fmt"
	"math"
)

const (
	// nodeMergeTolerance is how close an inserted point must be to an
	// existing node to mark that node instead of splicing a new one.
	nodeMergeTolerance = 1.0

	// splitTicks is the number of uniform parameter steps searched per
	// segment when locating where on a path a point lies.
	splitTicks = 1000

	// forcedCarryTolerance is how far a forced position may drift during
	// splicing and still re-mark the node that lands there.
	forcedCarryTolerance = 0.5
)

// SplitAtIntersections finds the crossings between every pair of paths
// and marks them as session-forced nodes, splicing new nodes into both
// paths where a crossing falls inside a segment. Dots are then anchored
// at the crossings, so overlapping strokes share a dot instead of
// colliding near one.
//
// Paths whose bounding boxes do not touch are skipped. Each path pair is
// visited once, against the segments both paths had on entry; nodes
// spliced in for one crossing do not spawn follow-up searches, and a
// crossing that lands within nodeMergeTolerance of an existing node
// marks that node instead.
func SplitAtIntersections(paths []*Path) error {
	for i := range paths {
		for j := i + 1; j < len(paths); j++ {
			if !paths[i].BoundingBox().Overlaps(paths[j].BoundingBox()) {
				continue
			}
			if err := splitPairAtIntersections(paths[i], paths[j]); err != nil {
				return fmt.Errorf("splitting paths %d and %d: %w", i, j, err)
			}
		}
	}
	return nil
}

func splitPairAtIntersections(a, b *Path) error {
	segsA := a.Segments()
	segsB := b.Segments()
	for _, sa := range segsA {
		for _, sb := range segsB {
			for _, hit := range Intersections(sa, sb) {
				Logger().Debug("marking path intersection", "x", hit.Pos.X, "y", hit.Pos.Y)
				if err := a.InsertPoint(hit.Pos); err != nil {
					return err
				}
				if err := b.InsertPoint(hit.Pos); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// InsertPoint marks pt on the path as session-forced. If an existing
// node lies within nodeMergeTolerance of pt, the first such node in node
// order is marked. Otherwise the segment parameter nearest pt is located
// by sampling splitTicks uniform steps per segment, the segment is split
// there, and the split nodes are spliced into the path with the new
// on-curve node at the split marked.
//
// Splicing replaces the segment's original nodes. Persistent anchor
// flags on replaced nodes carry over to new nodes within
// forcedCarryTolerance of their position, and every position that was
// forced before the splice re-marks nodes found there afterwards.
//
// Returns ErrPointNotOnPath if the path has no segments to search.
func (p *Path) InsertPoint(pt Point) error {
	for _, n := range p.Nodes {
		if n.Pos.Distance(pt) < nodeMergeTolerance {
			n.locallyForced = true
			return nil
		}
	}

	spans := p.segmentSpans()
	bestSpan := -1
	var bestT float64
	bestD := math.MaxFloat64
	for i, sp := range spans {
		for t := 1; t < splitTicks; t++ {
			tt := float64(t) / splitTicks
			d := sp.seg.Eval(tt).DistanceSquared(pt)
			if d < bestD {
				bestD = d
				bestSpan = i
				bestT = tt
			}
		}
	}
	if bestSpan == -1 {
		return ErrPointNotOnPath
	}
	p.splice(spans[bestSpan], bestT)
	return nil
}

// splice splits the span's segment at t and swaps the split's nodes in
// for the segment's original ones. The node at the split point is marked
// session-forced.
func (p *Path) splice(sp segmentSpan, t float64) {
	left, right := sp.seg.Split(t)
	var insert []*Node
	switch sp.seg.Kind {
	case LineKind:
		insert = []*Node{
			NewNode(left.P0, LineNode),
			NewNode(left.P1, LineNode),
			NewNode(right.P1, LineNode),
		}
		insert[1].locallyForced = true
	case CubicKind:
		insert = []*Node{
			NewNode(left.P0, CurveNode),
			NewNode(left.P1, OffCurveNode),
			NewNode(left.P2, OffCurveNode),
			NewNode(left.P3, CurveNode),
			NewNode(right.P1, OffCurveNode),
			NewNode(right.P2, OffCurveNode),
			NewNode(right.P3, CurveNode),
		}
		insert[3].locallyForced = true
	}

	forcedPos := make([]Point, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		if n.IsForced() {
			forcedPos = append(forcedPos, n.Pos)
		}
	}

	var replaced []*Node
	var newNodes []*Node
	if sp.end > sp.start {
		replaced = p.Nodes[sp.start : sp.end+1]
		newNodes = make([]*Node, 0, len(p.Nodes)+len(insert)-len(replaced))
		newNodes = append(newNodes, p.Nodes[:sp.start]...)
		newNodes = append(newNodes, insert...)
		newNodes = append(newNodes, p.Nodes[sp.end+1:]...)
	} else {
		// Wrap segment of a closed path. Its controls sit after the last
		// on-curve node and, for rotated paths, before the first one; the
		// replacement keeps the path starting at the old end node's
		// position and moves the split to the tail.
		replaced = append(replaced, p.Nodes[sp.start:]...)
		replaced = append(replaced, p.Nodes[:sp.end+1]...)
		newNodes = make([]*Node, 0, len(p.Nodes)+len(insert)-len(replaced))
		if sp.start == sp.end {
			// The wrap segment is the whole path: one on-curve node
			// looping back to itself. The split's end node coincides
			// with its start node, so only one of them is kept.
			newNodes = append(newNodes, insert[:len(insert)-1]...)
		} else {
			newNodes = append(newNodes, insert[len(insert)-1])
			newNodes = append(newNodes, p.Nodes[sp.end+1:sp.start]...)
			newNodes = append(newNodes, insert[:len(insert)-1]...)
		}
	}

	for _, n := range newNodes {
		for _, old := range replaced {
			if old.Forced && old.Pos.Distance(n.Pos) < forcedCarryTolerance {
				n.Forced = true
			}
		}
		for _, pos := range forcedPos {
			if pos.Distance(n.Pos) < forcedCarryTolerance {
				n.locallyForced = true
			}
		}
	}
	p.Nodes = newNodes
}
