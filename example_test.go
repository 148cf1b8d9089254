package stipple_test

import (
	"fmt"
	"log"

	"github.com/typeknit/stipple"
)

func ExampleDotter_DotLayer() {
	// A single 100-unit stroke. With 10-unit dots spaced 10 apart, the
	// preferred center-to-center step of 20 fits the stroke exactly five
	// times, so no spacing adjustment is needed.
	stroke := stipple.Polyline(false, stipple.Pt(0, 0), stipple.Pt(100, 0))

	d := &stipple.Dotter{Params: stipple.Params{
		DotSize:         10,
		DotSpacing:      10,
		FlexPercent:     25,
		PreventOverlaps: true,
	}}
	res, err := d.DotLayer(&stipple.Layer{Name: "stroke", Paths: []*stipple.Path{stroke}})
	if err != nil {
		log.Fatal(err)
	}

	// The stroke's endpoints are anchored and come first; the interior
	// dots follow in path order.
	fmt.Printf("template: circle of diameter %g\n", res.Template.Size)
	for _, s := range res.Shapes {
		fmt.Printf("dot at (%g, %g)\n", s.Ref.Center.X, s.Ref.Center.Y)
	}
	// Output:
	// template: circle of diameter 10
	// dot at (0, 0)
	// dot at (100, 0)
	// dot at (20, 0)
	// dot at (40, 0)
	// dot at (60, 0)
	// dot at (80, 0)
}
