package stipple

import "sort"

// arcSamples is the number of chords each segment is divided into when
// measuring arc length. The same subdivision supplies the knots of the
// arc-length index, so index totals and segment lengths agree exactly.
const arcSamples = 100

// ArclenIndex maps cumulative arc length along a segment run to position.
// It samples every segment at arcSamples uniform parameters and records
// the chord-length distance and position at each sample, bracketed by the
// run's exact start and end.
//
// Distances are nondecreasing. Queries between knots interpolate
// linearly; queries outside [0, Length] clamp to the run's endpoints.
type ArclenIndex struct {
	dists []float64
	pts   []Point
	total float64
}

// NewArclenIndex builds the index for a run of segments. The segments are
// assumed contiguous, each starting where the previous one ends.
func NewArclenIndex(segs []Segment) *ArclenIndex {
	ix := &ArclenIndex{}
	if len(segs) == 0 {
		return ix
	}
	n := arcSamples * len(segs) + 1
	ix.dists = make([]float64, 0, n)
	ix.pts = make([]Point, 0, n)
	ix.dists = append(ix.dists, 0)
	ix.pts = append(ix.pts, segs[0].Start())

	base := 0.0
	for _, seg := range segs {
		local := 0.0
		prev := seg.Start()
		for k := 1; k <= arcSamples; k++ {
			pt := seg.Eval(float64(k) / arcSamples)
			local += prev.Distance(pt)
			prev = pt
			if k < arcSamples {
				ix.dists = append(ix.dists, base+local)
				ix.pts = append(ix.pts, pt)
			}
		}
		base += local
		ix.dists = append(ix.dists, base)
		ix.pts = append(ix.pts, seg.End())
	}
	ix.total = base
	return ix
}

// Length returns the total arc length of the indexed run.
func (ix *ArclenIndex) Length() float64 {
	return ix.total
}

// PositionAt returns the point at the given arc-length distance from the
// start of the run.
func (ix *ArclenIndex) PositionAt(dist float64) Point {
	if len(ix.pts) == 0 {
		return Point{}
	}
	if dist <= 0 {
		return ix.pts[0]
	}
	if dist >= ix.total {
		return ix.pts[len(ix.pts)-1]
	}
	i := sort.SearchFloat64s(ix.dists, dist)
	if i == 0 {
		return ix.pts[0]
	}
	// dists[i-1] < dist <= dists[i] holds here, so the span is nonempty.
	d0, d1 := ix.dists[i-1], ix.dists[i]
	return ix.pts[i-1].Lerp(ix.pts[i], (dist-d0)/(d1-d0))
}
