// Package fontpath extracts glyph outlines from font files as stipple
// paths.
//
// Outlines come back in the y-down coordinate system fonts and SVG
// share, with one closed path per contour and quadratic Béziers raised
// to cubics, ready for dotting without further conversion.
package fontpath

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/typeknit/stipple"
)

// ErrMissingGlyph reports that a font has no glyph for a rune.
var ErrMissingGlyph = errors.New("fontpath: no glyph for rune")

// Source extracts outlines from one parsed font. It reuses an internal
// buffer across calls and is not safe for concurrent use.
type Source struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// New parses TTF or OTF font data.
func New(data []byte) (*Source, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontpath: parsing font: %w", err)
	}
	return &Source{font: f}, nil
}

// GlyphPaths returns the outline of r at the given pixels-per-em, one
// closed path per contour, along with the glyph's advance width.
// Glyphs without an outline, like the space, return no paths and their
// advance.
//
// The error wraps ErrMissingGlyph when the font has no glyph for r, and
// sfnt.ErrColoredGlyph when the glyph only has a color representation.
func (s *Source) GlyphPaths(r rune, ppem float64) ([]*stipple.Path, float64, error) {
	fp := fixed.Int26_6(ppem * 64)
	gi, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return nil, 0, fmt.Errorf("fontpath: glyph index of %q: %w", r, err)
	}
	if gi == 0 {
		return nil, 0, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}
	segs, err := s.font.LoadGlyph(&s.buf, gi, fp, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("fontpath: loading glyph %q: %w", r, err)
	}
	adv, err := s.font.GlyphAdvance(&s.buf, gi, fp, font.HintingNone)
	if err != nil {
		return nil, 0, fmt.Errorf("fontpath: advance of %q: %w", r, err)
	}
	return buildPaths(segs), float64(adv) / 64, nil
}

// buildPaths converts loaded glyph segments to closed paths, raising
// quadratics to cubics. Font contours close implicitly, so an explicit
// closing node that duplicates a contour's start is dropped in favor of
// the path's own wrap segment.
func buildPaths(segs sfnt.Segments) []*stipple.Path {
	var paths []*stipple.Path
	var cur *stipple.Path
	var pen stipple.Point

	flush := func() {
		if cur == nil {
			return
		}
		if n := len(cur.Nodes); n > 1 &&
			cur.Nodes[n-1].Type != stipple.OffCurveNode &&
			cur.Nodes[n-1].Pos == cur.Nodes[0].Pos {
			cur.Nodes = cur.Nodes[:n-1]
		}
		paths = append(paths, cur)
		cur = nil
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			pen = fixedPt(seg.Args[0])
			cur = &stipple.Path{
				Closed: true,
				Nodes:  []*stipple.Node{stipple.NewNode(pen, stipple.LineNode)},
			}
		case sfnt.SegmentOpLineTo:
			pen = fixedPt(seg.Args[0])
			cur.Nodes = append(cur.Nodes, stipple.NewNode(pen, stipple.LineNode))
		case sfnt.SegmentOpQuadTo:
			q1 := fixedPt(seg.Args[0])
			q2 := fixedPt(seg.Args[1])
			cur.Nodes = append(cur.Nodes,
				stipple.NewNode(pen.Lerp(q1, 2.0/3.0), stipple.OffCurveNode),
				stipple.NewNode(q2.Lerp(q1, 2.0/3.0), stipple.OffCurveNode),
				stipple.NewNode(q2, stipple.CurveNode))
			pen = q2
		case sfnt.SegmentOpCubeTo:
			c1 := fixedPt(seg.Args[0])
			c2 := fixedPt(seg.Args[1])
			end := fixedPt(seg.Args[2])
			cur.Nodes = append(cur.Nodes,
				stipple.NewNode(c1, stipple.OffCurveNode),
				stipple.NewNode(c2, stipple.OffCurveNode),
				stipple.NewNode(end, stipple.CurveNode))
			pen = end
		}
	}
	flush()
	return paths
}

func fixedPt(p fixed.Point26_6) stipple.Point {
	return stipple.Pt(float64(p.X)/64, float64(p.Y)/64)
}
