package stipple

import "math"

const (
	// intersectEpsilon absorbs parameter overshoot at segment boundaries,
	// where root finding may report values slightly outside [0, 1].
	intersectEpsilon = 1e-9
	// curveIntersectAccuracy is the bounding box extent below which the
	// curve/curve subdivision stops and reports a crossing. It doubles as
	// the parameter granularity when merging hits from adjacent leaves.
	curveIntersectAccuracy = 1e-3
)

// SegmentIntersection is a crossing of two segments.
type SegmentIntersection struct {
	// The 'time' of the crossing on the first segment, in [0, 1].
	TA float64
	// The 'time' of the crossing on the second segment, in [0, 1].
	TB float64
	// The crossing point, evaluated on the first segment at TA.
	Pos Point
}

// Intersections computes the crossings of two segments, restricted to the
// parameter range [0, 1] on both. Degenerate configurations such as
// coincident lines or identical segments yield no intersections rather
// than failing.
func Intersections(a, b Segment) []SegmentIntersection {
	switch {
	case a.Kind == LineKind && b.Kind == LineKind:
		return lineLineIntersections(a, b)
	case a.Kind == CubicKind && b.Kind == LineKind:
		return cubicLineIntersections(a, b, false)
	case a.Kind == LineKind && b.Kind == CubicKind:
		return cubicLineIntersections(b, a, true)
	default:
		return curveCurveIntersections(a, b)
	}
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}

func lineLineIntersections(a, b Segment) []SegmentIntersection {
	p0 := b.P0
	p1 := b.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(a.P1.Y-a.P0.Y) - dy*(a.P1.X-a.P0.X)
	if math.Abs(det) < intersectEpsilon {
		// Lines are parallel or coincident (or nearly so).
		return nil
	}
	t := dx*(p0.Y-a.P0.Y) - dy*(p0.X-a.P0.X)
	// t = position on a
	t /= det
	if t >= -intersectEpsilon && t <= 1+intersectEpsilon {
		// u = position on b
		u := (a.P0.X-p0.X)*(a.P1.Y-a.P0.Y) - (a.P0.Y-p0.Y)*(a.P1.X-a.P0.X)
		u /= det
		if u >= 0.0 && u <= 1.0 {
			ta := clamp01(t)
			return []SegmentIntersection{{TA: ta, TB: u, Pos: a.Eval(ta)}}
		}
	}
	return nil
}

// cubicLineIntersections intersects the cubic c with the line l. If
// swapped is set, the caller passed the line as the first segment and the
// parameters trade places in the result.
func cubicLineIntersections(c, l Segment, swapped bool) []SegmentIntersection {
	p0 := l.P0
	p1 := l.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	// The basic technique here is to determine x and y as a cubic polynomial
	// as a function of t. Then plug those values into the line equation for the
	// probe line (giving a sort of signed distance from the probe line) and solve
	// that for t.
	px0, px1, px2, px3 := cubicCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	c0 := dy*(px0-p0.X) - dx*(py0-p0.Y)
	c1 := dy*px1 - dx*py1
	c2 := dy*px2 - dx*py2
	c3 := dy*px3 - dx*py3
	if c0 == 0 && c1 == 0 && c2 == 0 && c3 == 0 {
		// The cubic lies on the probe line.
		return nil
	}
	invlen2 := 1.0 / (dx*dx + dy*dy)
	ts, n := SolveCubic(c0, c1, c2, c3)
	var out []SegmentIntersection
	for _, t := range ts[:n] {
		if t >= -intersectEpsilon && t <= 1+intersectEpsilon {
			x := px0 + t*px1 + t*t*px2 + t*t*t*px3
			y := py0 + t*py1 + t*t*py2 + t*t*t*py3
			u := ((x-p0.X)*dx + (y-p0.Y)*dy) * invlen2
			if u >= 0.0 && u <= 1.0 {
				tc := clamp01(t)
				hit := SegmentIntersection{TA: tc, TB: u, Pos: c.Eval(tc)}
				if swapped {
					hit.TA, hit.TB = hit.TB, hit.TA
					hit.Pos = l.Eval(hit.TA)
				}
				out = append(out, hit)
			}
		}
	}
	return out
}

// cubicCoefficients returns polynomial coefficients given cubic Bézier coordinates.
func cubicCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}

// curveCurveIntersections intersects two cubics by recursive subdivision:
// halve both curves while their bounding boxes overlap, and report a
// crossing at the parameter midpoints once both boxes are smaller than
// curveIntersectAccuracy. Hits from adjacent leaves around the same
// crossing are merged, keeping the first in parameter order.
func curveCurveIntersections(a, b Segment) []SegmentIntersection {
	if a == b {
		// Identical curves overlap everywhere; there is no usable
		// crossing point.
		return nil
	}
	var out []SegmentIntersection
	var recurse func(ca Segment, a0, a1 float64, cb Segment, b0, b1 float64)
	recurse = func(ca Segment, a0, a1 float64, cb Segment, b0, b1 float64) {
		ra := ca.BoundingBox()
		rb := cb.BoundingBox()
		if !ra.Overlaps(rb) {
			return
		}
		if ra.Width() < curveIntersectAccuracy && ra.Height() < curveIntersectAccuracy &&
			rb.Width() < curveIntersectAccuracy && rb.Height() < curveIntersectAccuracy {
			ta := 0.5 * (a0 + a1)
			tb := 0.5 * (b0 + b1)
			for _, hit := range out {
				if math.Abs(hit.TA-ta) < curveIntersectAccuracy && math.Abs(hit.TB-tb) < curveIntersectAccuracy {
					return
				}
			}
			out = append(out, SegmentIntersection{TA: ta, TB: tb, Pos: a.Eval(ta)})
			return
		}
		am := 0.5 * (a0 + a1)
		bm := 0.5 * (b0 + b1)
		al, ar := ca.Split(0.5)
		bl, br := cb.Split(0.5)
		recurse(al, a0, am, bl, b0, bm)
		recurse(al, a0, am, br, bm, b1)
		recurse(ar, am, a1, bl, b0, bm)
		recurse(ar, am, a1, br, bm, b1)
	}
	recurse(a, 0, 1, b, 0, 1)
	return out
}
