package stipple

import (
	"errors"
	"fmt"
	"sync"
)

// Params configures a dotting pass.
type Params struct {
	// DotSize is the dot diameter.
	DotSize float64
	// DotSpacing is the gap between the edges of consecutive dots, so
	// the preferred center-to-center step is DotSize + DotSpacing.
	DotSpacing float64
	// FlexPercent caps the spacing correction allowed when fitting a
	// whole number of steps to a run, as a percentage of DotSpacing.
	FlexPercent float64
	// PreventOverlaps drops unforced centers that crowd a kept one.
	PreventOverlaps bool
	// SplitPaths anchors dots at path crossings before placing.
	SplitPaths bool
	// ContourSource names an alternate outline source. The engine does
	// not resolve the name; callers that honor it fill Layer.Source.
	ContourSource string
}

// Validate checks the parameters for range errors. The engine assumes
// validated parameters; callers reject bad ones before dotting.
func (p Params) Validate() error {
	if p.DotSize <= 0 {
		return fmt.Errorf("stipple: dot size %g, must be positive", p.DotSize)
	}
	if p.DotSpacing < 0 {
		return fmt.Errorf("stipple: dot spacing %g, must not be negative", p.DotSpacing)
	}
	if p.FlexPercent < 0 || p.FlexPercent > 100 {
		return fmt.Errorf("stipple: flex percentage %g, must be between 0 and 100", p.FlexPercent)
	}
	return nil
}

// DefaultParams returns the parameters applied where a layer specifies
// no override.
func DefaultParams() Params {
	return Params{
		DotSize:         15,
		DotSpacing:      15,
		FlexPercent:     25,
		PreventOverlaps: true,
	}
}

// Center is a candidate dot position. Forced centers sit at run
// boundaries and crossings; the overlap resolver never drops them.
type Center struct {
	Pos    Point
	Forced bool
}

// Layer is one glyph layer's outlines, queued for dotting.
type Layer struct {
	// Name identifies the layer in warnings and errors.
	Name string
	// Paths are the layer's own outlines.
	Paths []*Path
	// Source optionally carries outlines resolved from another layer
	// per the ContourSource parameter. When set, it is dotted in place
	// of Paths.
	Source []*Path
	// Params overrides the dotter's parameters for this layer.
	Params *Params
}

// Result is the outcome of dotting one layer.
type Result struct {
	// Shapes holds the dots in generation order.
	Shapes []Shape
	// Template is the shared template the shapes reference. It is nil
	// in preview mode, where shapes carry literal geometry.
	Template *TemplateRequest
	// Warnings lists the non-fatal conditions met during the pass.
	Warnings []string
}

// Dotter converts outline layers to evenly spaced dots.
//
// Parameter validation is the caller's job: callers reject out-of-range
// parameters (see Params.Validate) before a pass runs.
type Dotter struct {
	// Params applies to layers without their own override. Its DotSize
	// is also the canonical template size all layers' references are
	// scaled against.
	Params Params
	// Preview selects literal circle outlines instead of template
	// references.
	Preview bool
}

// DotLayer runs one dotting pass over a layer.
//
// The pass reads the layer's source outlines (Source if set, Paths
// otherwise), optionally splits them at intersections, lays centers run
// by run, resolves overlaps, and emits shapes. The outlines are left as
// the pass shaped them, except that session-forced marks are cleared on
// every exit, including failure.
func (d *Dotter) DotLayer(layer *Layer) (*Result, error) {
	params := d.Params
	if layer.Params != nil {
		params = *layer.Params
	}
	paths := layer.Paths
	if layer.Source != nil {
		paths = layer.Source
	}
	defer clearLocallyForced(paths)

	if params.SplitPaths {
		if err := SplitAtIntersections(paths); err != nil {
			return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
		}
	}

	res := &Result{}
	var centers []Center
	for _, p := range paths {
		for run := range p.ForcedRuns() {
			runCenters, flexOK := placeCenters(run, params)
			if !flexOK {
				Logger().Warn("spacing fell back to preferred step", "layer", layer.Name)
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("layer %q: spacing adjustment exceeds flex allowance, keeping preferred step", layer.Name))
			}
			centers = append(centers, runCenters...)
		}
	}
	if params.PreventOverlaps {
		centers = FilterOverlaps(centers, params.DotSize)
	}
	res.Shapes, res.Template = emitShapes(centers, params, d.Preview, d.Params.DotSize)
	return res, nil
}

// DotAll dots the layers concurrently, one goroutine per layer, and
// returns the results in layer order. Layers must not share paths.
//
// Layers fail independently: a failed layer leaves a nil Result at its
// position and its error joined into the returned error.
func (d *Dotter) DotAll(layers []*Layer) ([]*Result, error) {
	results := make([]*Result, len(layers))
	errs := make([]error, len(layers))
	var wg sync.WaitGroup
	for i, layer := range layers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = d.DotLayer(layer)
		}()
	}
	wg.Wait()
	return results, errors.Join(errs...)
}

// placeCenters lays dot centers along one run. The run's endpoints are
// anchored with forced centers, one for a closed run, and the interior
// is filled at the solved step. flexOK is false when the solver fell
// back to the unadjusted preferred step.
//
// Runs without segments and runs of zero length produce no centers.
func placeCenters(run *Path, params Params) (centers []Center, flexOK bool) {
	segs := run.Segments()
	if len(segs) == 0 {
		return nil, true
	}
	ix := NewArclenIndex(segs)
	length := ix.Length()
	if length == 0 {
		return nil, true
	}

	centers = append(centers, Center{Pos: ix.PositionAt(0), Forced: true})
	if !run.Closed {
		centers = append(centers, Center{Pos: ix.PositionAt(length), Forced: true})
	}
	step, flexOK := SolveStep(length, params)
	for dist := step; dist < length; dist += step {
		centers = append(centers, Center{Pos: ix.PositionAt(dist)})
	}
	return centers, flexOK
}

// clearLocallyForced erases the session-forced marks a pass leaves on
// its paths. Persistent forced flags stay.
func clearLocallyForced(paths []*Path) {
	for _, p := range paths {
		for _, n := range p.Nodes {
			n.locallyForced = false
		}
	}
}
