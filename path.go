package stipple

// NodeType tags what a node is. On-curve tags record how the segment
// arriving at the node was drawn; segment derivation itself is structural
// and looks only at the off-curve runs between on-curve nodes.
type NodeType uint8

const (
	// An on-curve node reached by a straight line.
	LineNode NodeType = iota + 1
	// An on-curve node reached by a cubic Bézier.
	CurveNode
	// A control point of a cubic Bézier.
	OffCurveNode
)

func (t NodeType) String() string {
	switch t {
	case LineNode:
		return "line"
	case CurveNode:
		return "curve"
	case OffCurveNode:
		return "offcurve"
	default:
		return "invalid"
	}
}

// Node is one point of a path's outline.
//
// Forced is the persistent anchor annotation, set by the designer outside
// this engine and never cleared by it. locallyForced is the session
// annotation set during a single pass (by the intersection splitter) and
// cleared before the pass returns, success or failure.
type Node struct {
	Pos    Point
	Type   NodeType
	Forced bool

	locallyForced bool
}

// NewNode returns an unforced node of the given type.
func NewNode(pos Point, typ NodeType) *Node {
	return &Node{Pos: pos, Type: typ}
}

// IsForced reports whether a dot center must be anchored at this node,
// either persistently or for the duration of the current pass.
func (n *Node) IsForced() bool {
	return n.Forced || n.locallyForced
}

func (n *Node) onCurve() bool {
	return n.Type != OffCurveNode
}

// Path is an ordered sequence of nodes, open or closed.
//
// Between consecutive on-curve nodes, zero off-curve nodes form a line
// segment and two form a cubic segment. A closed path additionally wraps
// from its last on-curve node back to its first node, picking up any
// trailing off-curve nodes as the wrap segment's controls. A path with
// fewer than two nodes has no segments and length 0.
type Path struct {
	Nodes  []*Node
	Closed bool
}

// Polyline returns a path of line nodes through the given points.
func Polyline(closed bool, pts ...Point) *Path {
	p := &Path{Closed: closed}
	for _, pt := range pts {
		p.Nodes = append(p.Nodes, NewNode(pt, LineNode))
	}
	return p
}

// Clone returns a deep copy of the path. The copy shares no nodes with
// the original; all annotations are preserved.
func (p *Path) Clone() *Path {
	out := &Path{
		Nodes:  make([]*Node, len(p.Nodes)),
		Closed: p.Closed,
	}
	for i, n := range p.Nodes {
		c := *n
		out.Nodes[i] = &c
	}
	return out
}

// Translate moves every node of the path by v, in place.
func (p *Path) Translate(v Vec2) {
	for _, n := range p.Nodes {
		n.Pos = n.Pos.Translate(v)
	}
}

// segmentSpan is a derived segment together with the node index range it
// covers. For the wrap segment of a closed path, end is the index of the
// path's first on-curve node.
type segmentSpan struct {
	seg        Segment
	start, end int
}

// segmentSpans derives the path's segments along with their node spans.
// Node runs that fit neither segment form (a single off-curve node, or
// three or more between on-curve nodes) are skipped.
func (p *Path) segmentSpans() []segmentSpan {
	if len(p.Nodes) < 2 {
		return nil
	}
	first := -1
	for i, n := range p.Nodes {
		if n.onCurve() {
			first = i
			break
		}
	}
	if first == -1 {
		return nil
	}

	var spans []segmentSpan
	ctrl := make([]int, 0, 4)
	emit := func(from, to int) {
		a := p.Nodes[from].Pos
		b := p.Nodes[to].Pos
		switch len(ctrl) {
		case 0:
			spans = append(spans, segmentSpan{LineSeg(a, b), from, to})
		case 2:
			c1 := p.Nodes[ctrl[0]].Pos
			c2 := p.Nodes[ctrl[1]].Pos
			spans = append(spans, segmentSpan{CubicSeg(a, c1, c2, b), from, to})
		}
		ctrl = ctrl[:0]
	}

	prev := first
	for i := first + 1; i < len(p.Nodes); i++ {
		if !p.Nodes[i].onCurve() {
			ctrl = append(ctrl, i)
			continue
		}
		emit(prev, i)
		prev = i
	}
	if p.Closed {
		// Wrap segment: trailing off-curves, then any off-curves that
		// preceded the first on-curve node.
		for i := range first {
			ctrl = append(ctrl, i)
		}
		if prev != first || len(ctrl) > 0 {
			emit(prev, first)
		}
	}
	return spans
}

// Segments derives the path's line and cubic segments in order.
func (p *Path) Segments() []Segment {
	spans := p.segmentSpans()
	if spans == nil {
		return nil
	}
	segs := make([]Segment, len(spans))
	for i, sp := range spans {
		segs[i] = sp.seg
	}
	return segs
}

// BoundingBox returns the exact bounding box of the path's segments. A
// path without segments is bounded by its node positions.
func (p *Path) BoundingBox() Rect {
	spans := p.segmentSpans()
	if len(spans) == 0 {
		if len(p.Nodes) == 0 {
			return Rect{}
		}
		bbox := NewRectFromPoints(p.Nodes[0].Pos, p.Nodes[0].Pos)
		for _, n := range p.Nodes[1:] {
			bbox = bbox.UnionPoint(n.Pos)
		}
		return bbox
	}
	bbox := spans[0].seg.BoundingBox()
	for _, sp := range spans[1:] {
		bbox = bbox.Union(sp.seg.BoundingBox())
	}
	return bbox
}
