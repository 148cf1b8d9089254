package stipple

import (
	"fmt"
	"sort"
)

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

// MaxExtrema is the maximum number of extrema a segment can have.
const MaxExtrema = 4

// Segment represents one segment of a path, derived from consecutive
// on-curve nodes. This type acts as a sort of tagged union representing
// both segment forms.
type Segment struct {
	// We don't use an interface for Segment because segments are derived in
	// bulk on hot paths and we don't want to allocate for them. A pair of
	// evaluation switches is a small price for that.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// LineSeg returns the line segment from p0 to p1.
func LineSeg(p0, p1 Point) Segment {
	return Segment{Kind: LineKind, P0: p0, P1: p1}
}

// CubicSeg returns the cubic Bézier segment from p0 to p3 with control
// points p1 and p2.
func CubicSeg(p0, p1, p2, p3 Point) Segment {
	return Segment{Kind: CubicKind, P0: p0, P1: p1, P2: p2, P3: p3}
}

func (seg Segment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("Line(%s, %s)", seg.P0, seg.P1)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", seg.P0, seg.P1, seg.P2, seg.P3)
	default:
		panic("unreachable")
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case CubicKind:
		return seg.P3
	default:
		panic("unreachable")
	}
}

// Eval evaluates the segment at t ∈ [0, 1]. Lines interpolate linearly,
// cubics use the polynomial form.
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.P0.Lerp(seg.P1, t)
	case CubicKind:
		mt := 1.0 - t
		a := Vec2(seg.P0).Mul(mt * mt * mt)
		b := Vec2(seg.P1).Mul(mt * mt * 3.0)
		c := Vec2(seg.P2).Mul(mt * 3.0)
		d := Vec2(seg.P3)
		v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
		return Point(v)
	default:
		panic("unreachable")
	}
}

// Split subdivides the segment at t, using de Casteljau for cubics. The
// two halves together trace exactly the original segment.
func (seg Segment) Split(t float64) (Segment, Segment) {
	switch seg.Kind {
	case LineKind:
		mid := seg.P0.Lerp(seg.P1, t)
		return LineSeg(seg.P0, mid), LineSeg(mid, seg.P1)
	case CubicKind:
		p01 := seg.P0.Lerp(seg.P1, t)
		p12 := seg.P1.Lerp(seg.P2, t)
		p23 := seg.P2.Lerp(seg.P3, t)
		p012 := p01.Lerp(p12, t)
		p123 := p12.Lerp(p23, t)
		mid := p012.Lerp(p123, t)
		return CubicSeg(seg.P0, p01, p012, mid), CubicSeg(mid, p123, p23, seg.P3)
	default:
		panic("unreachable")
	}
}

// PolylineLength approximates the segment's arc length by summing the
// chords between steps+1 evaluated points at fixed parametric spacing.
// Chords underestimate the true length; the error shrinks with steps.
//
// Lines take the same path as cubics so that accumulated length tables
// built from per-step chords close exactly on the segment total.
func (seg Segment) PolylineLength(steps int) float64 {
	var length float64
	prev := seg.P0
	for k := 1; k <= steps; k++ {
		pt := seg.Eval(float64(k) / float64(steps))
		length += prev.Distance(pt)
		prev = pt
	}
	return length
}

// Extrema returns the parameter values of the segment's extrema, the
// points where the derivative of one of its coordinates is zero.
func (seg Segment) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	if seg.Kind == LineKind {
		return out, 0
	}
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := seg.P1.Sub(seg.P0)
	d1 := seg.P2.Sub(seg.P1)
	d2 := seg.P3.Sub(seg.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the segment's exact bounding box, evaluating the
// curve at its extrema rather than bounding the control polygon.
func (seg Segment) BoundingBox() Rect {
	bbox := NewRectFromPoints(seg.Start(), seg.End())
	ts, n := seg.Extrema()
	for _, t := range ts[:n] {
		bbox = bbox.UnionPoint(seg.Eval(t))
	}
	return bbox
}
