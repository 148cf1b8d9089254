// Package stipple converts vector outlines into rows of evenly spaced
// circular dots, the way dotted display typefaces decorate glyph
// skeletons. Given a set of open or closed paths built from lines and
// cubic Béziers, it lays a dot every dotSize + dotSpacing units of arc
// length, stretching or shrinking that pitch within a flex allowance so
// a whole number of steps fits each stretch exactly.
//
// # Pipeline
//
// A pass over one layer runs these stages in order:
//
//   - [SplitAtIntersections] (optional) marks path crossings as forced
//     nodes so crossing strokes share a dot instead of colliding.
//   - [Path.ForcedRuns] cuts each path into runs between forced nodes.
//   - [ArclenIndex] maps distance along a run to position.
//   - [SolveStep] fits a whole number of steps to the run's length.
//   - Centers are placed: forced anchors at run boundaries, unforced
//     fills along the interior.
//   - [FilterOverlaps] (optional) drops unforced centers closer than one
//     dot diameter to a kept center. Forced centers always survive.
//   - Centers become [Shape] values: literal circle outlines in preview
//     mode, or references to one shared dot template in production mode.
//
// [Dotter.DotLayer] runs a single pass; [Dotter.DotAll] runs layers
// concurrently. Passes are deterministic: the same outlines and
// parameters produce bit-identical centers and shapes.
//
// # Geometry model
//
// [Path] stores on-curve and off-curve nodes the way font editors do.
// Between consecutive on-curve nodes, zero off-curve nodes make a line
// and two make a cubic; closed paths wrap from their last on-curve node
// back to their first. Nodes carry the forced annotations the pipeline
// anchors dots to: a persistent flag set by the designer, and a session
// flag the intersection splitter sets and every pass clears on exit.
//
// [Segment] is the derived value the numerics work on, a tagged
// line-or-cubic union with evaluation, subdivision, extrema, bounding
// boxes, and pairwise intersections.
//
// Sub-packages adapt the engine's boundary: fontpath extracts glyph
// outlines from font files, svgout renders results as SVG documents.
package stipple
