package fontpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/typeknit/stipple"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	s, err := New(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestGlyphPaths(t *testing.T) {
	s := testSource(t)
	paths, adv, err := s.GlyphPaths('o', 64)
	if err != nil {
		t.Fatal(err)
	}
	if adv <= 0 {
		t.Errorf("advance = %v, want > 0", adv)
	}
	// An 'o' has an outer and an inner contour.
	if len(paths) != 2 {
		t.Fatalf("got %d contours, want 2", len(paths))
	}
	for i, p := range paths {
		if !p.Closed {
			t.Errorf("contour %d is not closed", i)
		}
		if len(p.Segments()) == 0 {
			t.Errorf("contour %d has no segments", i)
		}
		if p.Nodes[0].Type == stipple.OffCurveNode {
			t.Errorf("contour %d starts off-curve", i)
		}
		// No explicit closing node: the wrap segment closes the contour.
		if last := p.Nodes[len(p.Nodes)-1]; last.Type != stipple.OffCurveNode &&
			last.Pos == p.Nodes[0].Pos {
			t.Errorf("contour %d carries a duplicate closing node", i)
		}
		// y-down with the origin on the baseline: a lowercase 'o' lies
		// almost entirely above it.
		box := p.BoundingBox()
		if box.Y0 >= 0 {
			t.Errorf("contour %d does not rise above the baseline: %v", i, box)
		}
		if box.Y1 > 32 {
			t.Errorf("contour %d reaches %v below the baseline", i, box.Y1)
		}
	}
}

func TestGlyphPathsDeterministic(t *testing.T) {
	s := testSource(t)
	first, _, err := s.GlyphPaths('g', 128)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := s.GlyphPaths('g', 128)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, first, second, cmp.AllowUnexported(stipple.Node{}))
}

func TestGlyphPathsAdvance(t *testing.T) {
	s := testSource(t)
	_, wide, err := s.GlyphPaths('m', 64)
	if err != nil {
		t.Fatal(err)
	}
	_, narrow, err := s.GlyphPaths('i', 64)
	if err != nil {
		t.Fatal(err)
	}
	if wide <= narrow {
		t.Errorf("advance of 'm' (%v) not wider than 'i' (%v)", wide, narrow)
	}
}

func TestGlyphPathsSpace(t *testing.T) {
	s := testSource(t)
	paths, adv, err := s.GlyphPaths(' ', 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 0 {
		t.Errorf("space has %d contours, want none", len(paths))
	}
	if adv <= 0 {
		t.Errorf("advance = %v, want > 0", adv)
	}
}

func TestGlyphPathsMissing(t *testing.T) {
	s := testSource(t)
	_, _, err := s.GlyphPaths('￾', 64)
	if !errors.Is(err, ErrMissingGlyph) {
		t.Errorf("got %v, want ErrMissingGlyph", err)
	}
}

func TestBuildPaths(t *testing.T) {
	fp := func(x, y fixed.Int26_6) fixed.Point26_6 {
		return fixed.Point26_6{X: x, Y: y}
	}
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fp(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fp(640, 0)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{fp(640, 640), fp(0, 640)}},
		// An explicit closing line back to the start; the contour closes
		// by wrapping instead.
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fp(0, 0)}},
	}

	pen := stipple.Pt(10, 0)
	q1 := stipple.Pt(10, 10)
	q2 := stipple.Pt(0, 10)
	want := []*stipple.Path{{
		Closed: true,
		Nodes: []*stipple.Node{
			stipple.NewNode(stipple.Pt(0, 0), stipple.LineNode),
			stipple.NewNode(pen, stipple.LineNode),
			stipple.NewNode(pen.Lerp(q1, 2.0/3.0), stipple.OffCurveNode),
			stipple.NewNode(q2.Lerp(q1, 2.0/3.0), stipple.OffCurveNode),
			stipple.NewNode(q2, stipple.CurveNode),
		},
	}}
	diff(t, want, buildPaths(segs), cmp.AllowUnexported(stipple.Node{}))
}

func TestBuildPathsCubicContour(t *testing.T) {
	fp := func(x, y fixed.Int26_6) fixed.Point26_6 {
		return fixed.Point26_6{X: x, Y: y}
	}
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fp(0, 0)}},
		{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{fp(64, 0), fp(128, 64), fp(128, 128)}},
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fp(320, 320)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fp(384, 320)}},
	}

	want := []*stipple.Path{
		{
			Closed: true,
			Nodes: []*stipple.Node{
				stipple.NewNode(stipple.Pt(0, 0), stipple.LineNode),
				stipple.NewNode(stipple.Pt(1, 0), stipple.OffCurveNode),
				stipple.NewNode(stipple.Pt(2, 1), stipple.OffCurveNode),
				stipple.NewNode(stipple.Pt(2, 2), stipple.CurveNode),
			},
		},
		{
			Closed: true,
			Nodes: []*stipple.Node{
				stipple.NewNode(stipple.Pt(5, 5), stipple.LineNode),
				stipple.NewNode(stipple.Pt(6, 5), stipple.LineNode),
			},
		},
	}
	diff(t, want, buildPaths(segs), cmp.AllowUnexported(stipple.Node{}))
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}
