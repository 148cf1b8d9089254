// Package svgout renders dotting results as SVG documents.
//
// Dots arrive either as literal circle outlines, written as path
// elements, or as references to one shared dot template, written as a
// defs entry created once per document plus a use element per dot.
package svgout

import (
	"fmt"
	"io"
	"strings"
	"sync"

	svg "github.com/ajstarks/svgo/float"

	"github.com/typeknit/stipple"
)

// Document writes one SVG document. Its methods serialize concurrent
// writers, and the shared dot template is defined at most once, at the
// size of the first result that requests it.
type Document struct {
	mu           sync.Mutex
	canvas       *svg.SVG
	templateSize float64
	hasTemplate  bool
}

// New opens a document on w with the given viewBox.
func New(w io.Writer, minX, minY, width, height float64) *Document {
	canvas := svg.New(w)
	canvas.Startview(width, height, minX, minY, width, height)
	return &Document{canvas: canvas}
}

// WriteResult appends one layer's shapes to the document.
func (d *Document) WriteResult(res *stipple.Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res.Template != nil {
		d.ensureTemplate(res.Template.Size)
	}
	for _, s := range res.Shapes {
		switch s.Kind {
		case stipple.PathShape:
			d.canvas.Path(PathData(s.Path))
		case stipple.RefShape:
			if s.Ref.Scale == 1 {
				d.canvas.Use(s.Ref.Center.X, s.Ref.Center.Y, "#dot")
				continue
			}
			d.canvas.Gtransform(fmt.Sprintf("translate(%g,%g) scale(%g)",
				s.Ref.Center.X, s.Ref.Center.Y, s.Ref.Scale))
			d.canvas.Use(0, 0, "#dot")
			d.canvas.Gend()
		}
	}
}

// End closes the document. No further writes may follow.
func (d *Document) End() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.canvas.End()
}

// ensureTemplate defines the shared dot template on first request.
// Later requests must agree on the size; a mismatch keeps the first
// template and is logged, since all of a document's consumers are meant
// to share one canonical size.
func (d *Document) ensureTemplate(size float64) {
	if d.hasTemplate {
		if size != d.templateSize {
			stipple.Logger().Warn("dot template size mismatch",
				"have", d.templateSize, "requested", size)
		}
		return
	}
	d.canvas.Def()
	d.canvas.Circle(0, 0, size/2, `id="dot"`)
	d.canvas.DefEnd()
	d.templateSize = size
	d.hasTemplate = true
}

// PathData renders a path's segments as SVG path data, with lines as L
// commands, cubics as C commands, and a trailing Z for closed paths.
// A path without segments renders as the empty string.
func PathData(p *stipple.Path) string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	start := segs[0].Start()
	fmt.Fprintf(&b, "M%g %g", start.X, start.Y)
	for _, seg := range segs {
		switch seg.Kind {
		case stipple.LineKind:
			fmt.Fprintf(&b, "L%g %g", seg.P1.X, seg.P1.Y)
		case stipple.CubicKind:
			fmt.Fprintf(&b, "C%g %g %g %g %g %g",
				seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, seg.P3.X, seg.P3.Y)
		}
	}
	if p.Closed {
		b.WriteByte('Z')
	}
	return b.String()
}
