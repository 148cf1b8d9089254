// Command stipple renders text as dotted outlines.
//
// It extracts glyph outlines from a font, lays evenly spaced dots along
// them, and writes the result as an SVG document, either as literal
// circle outlines (-preview) or as references to one shared dot shape.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/typeknit/stipple"
	"github.com/typeknit/stipple/fontpath"
	"github.com/typeknit/stipple/svgout"
)

var (
	fontFile = flag.String("font", "", "TTF or OTF font file (default: Go Regular)")
	text     = flag.String("text", "stipple", "text to render")
	output   = flag.String("o", "", "output SVG file (default: stdout)")
	ppem     = flag.Float64("ppem", 256, "pixels per em to render the glyphs at")

	dotSize         = flag.Float64("size", stipple.DefaultParams().DotSize, "dot diameter")
	dotSpacing      = flag.Float64("spacing", stipple.DefaultParams().DotSpacing, "gap between dot edges")
	flexPercent     = flag.Float64("flex", stipple.DefaultParams().FlexPercent, "spacing correction allowance, % of the gap")
	preventOverlaps = flag.Bool("prevent-overlaps", stipple.DefaultParams().PreventOverlaps, "drop dots that crowd earlier ones")
	splitPaths      = flag.Bool("split", false, "anchor dots where strokes cross")
	preview         = flag.Bool("preview", false, "emit literal circle outlines instead of a shared dot shape")

	verbose = flag.Bool("v", false, "log debug output to stderr")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *verbose {
		stipple.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	params := stipple.Params{
		DotSize:         *dotSize,
		DotSpacing:      *dotSpacing,
		FlexPercent:     *flexPercent,
		PreventOverlaps: *preventOverlaps,
		SplitPaths:      *splitPaths,
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	data := goregular.TTF
	if *fontFile != "" {
		var err error
		data, err = os.ReadFile(*fontFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	src, err := fontpath.New(data)
	if err != nil {
		log.Fatal(err)
	}

	var (
		layers    []*stipple.Layer
		bounds    stipple.Rect
		havePaths bool
		pen       float64
	)
	for _, r := range *text {
		paths, advance, err := src.GlyphPaths(r, *ppem)
		if errors.Is(err, fontpath.ErrMissingGlyph) {
			log.Printf("skipping %q: %v", r, err)
			continue
		}
		if err != nil {
			log.Fatal(err)
		}
		if len(paths) == 0 {
			pen += advance
			continue
		}
		for _, p := range paths {
			p.Translate(stipple.Vec(pen, 0))
			if !havePaths {
				bounds = p.BoundingBox()
				havePaths = true
				continue
			}
			bounds = bounds.Union(p.BoundingBox())
		}
		layers = append(layers, &stipple.Layer{
			Name:  fmt.Sprintf("U+%04X", r),
			Paths: paths,
		})
		pen += advance
	}
	if !havePaths {
		log.Fatal("no outlines to dot")
	}

	dotter := &stipple.Dotter{Params: params, Preview: *preview}
	results, err := dotter.DotAll(layers)
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range results {
		for _, warning := range res.Warnings {
			log.Print(warning)
		}
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	bounds = bounds.Inflate(*dotSize, *dotSize)
	doc := svgout.New(out, bounds.X0, bounds.Y0, bounds.Width(), bounds.Height())
	for _, res := range results {
		doc.WriteResult(res)
	}
	doc.End()
}
