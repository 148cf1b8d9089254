package stipple

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArclenIndexLine(t *testing.T) {
	ix := NewArclenIndex([]Segment{LineSeg(Pt(0, 0), Pt(100, 0))})
	diff(t, 100.0, ix.Length(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(25, 0), ix.PositionAt(25), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(62.5, 0), ix.PositionAt(62.5), cmpopts.EquateApprox(0, 1e-9))

	// Queries at and beyond the run's ends return its exact endpoints.
	diff(t, Pt(0, 0), ix.PositionAt(-5))
	diff(t, Pt(0, 0), ix.PositionAt(0))
	diff(t, Pt(100, 0), ix.PositionAt(ix.Length()))
	diff(t, Pt(100, 0), ix.PositionAt(1e9))
}

func TestArclenIndexMatchesSegmentLengths(t *testing.T) {
	segs := []Segment{
		LineSeg(Pt(0, 0), Pt(100, 0)),
		CubicSeg(Pt(100, 0), Pt(120, 30), Pt(150, 30), Pt(170, 0)),
		CubicSeg(Pt(170, 0), Pt(190, 40), Pt(210, -40), Pt(230, 0)),
	}
	want := segs[0].PolylineLength(arcSamples) +
		segs[1].PolylineLength(arcSamples) +
		segs[2].PolylineLength(arcSamples)
	if got := NewArclenIndex(segs).Length(); got != want {
		t.Errorf("index length %v differs from summed segment lengths %v", got, want)
	}
}

func TestArclenIndexJoint(t *testing.T) {
	ix := NewArclenIndex([]Segment{
		LineSeg(Pt(0, 0), Pt(100, 0)),
		LineSeg(Pt(100, 0), Pt(100, 50)),
	})
	diff(t, 150.0, ix.Length(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(100, 0), ix.PositionAt(100), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(100, 25), ix.PositionAt(125), cmpopts.EquateApprox(0, 1e-9))
}

func TestArclenIndexZeroLengthSegment(t *testing.T) {
	// A zero-length segment contributes a plateau of coincident knots.
	// Queries landing on the plateau must interpolate without dividing
	// by zero.
	ix := NewArclenIndex([]Segment{
		LineSeg(Pt(0, 0), Pt(100, 0)),
		LineSeg(Pt(100, 0), Pt(100, 0)),
		LineSeg(Pt(100, 0), Pt(100, 50)),
	})
	diff(t, 150.0, ix.Length(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(100, 0), ix.PositionAt(100), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(100, 40), ix.PositionAt(140), cmpopts.EquateApprox(0, 1e-9))
}

func TestArclenIndexEmpty(t *testing.T) {
	ix := NewArclenIndex(nil)
	diff(t, 0.0, ix.Length())
	diff(t, Point{}, ix.PositionAt(10))
}

func BenchmarkArclenIndex(b *testing.B) {
	segs := Circle(Pt(0, 0), 100).Segments()
	b.ResetTimer()
	for range b.N {
		ix := NewArclenIndex(segs)
		ix.PositionAt(100)
	}
}
