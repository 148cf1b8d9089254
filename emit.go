package stipple

import "math"

// circleArmLength is the length of a quarter-circle arc's control arms
// relative to the radius, chosen to minimize the deviation of the cubic
// from a true arc.
const circleArmLength = 0.551915024494

// Circle returns a closed path tracing a circle as four cubic arcs,
// starting at the point right of the center.
func Circle(center Point, radius float64) *Path {
	const n = 4
	const deltaTh = 2 * math.Pi / n
	const a = circleArmLength
	x, y := center.X, center.Y
	p := &Path{
		Closed: true,
		Nodes:  []*Node{NewNode(Pt(x+radius, y), CurveNode)},
	}
	for ix := 1; ix <= n; ix++ {
		th1 := deltaTh * float64(ix)
		th0 := th1 - deltaTh
		s0, c0 := math.Sincos(th0)
		s1, c1 := math.Sincos(th1)
		if ix == n {
			s1, c1 = 0, 1
		}
		p.Nodes = append(p.Nodes,
			NewNode(Pt(x+radius*(c0-a*s0), y+radius*(s0+a*c0)), OffCurveNode),
			NewNode(Pt(x+radius*(c1+a*s1), y+radius*(s1-a*c1)), OffCurveNode),
		)
		if ix < n {
			p.Nodes = append(p.Nodes, NewNode(Pt(x+radius*c1, y+radius*s1), CurveNode))
		}
	}
	return p
}

// ShapeKind says how a dot is represented in a layer's output.
type ShapeKind uint8

const (
	// A literal circle outline.
	PathShape ShapeKind = iota + 1
	// A reference to the layer's shared dot template.
	RefShape
)

func (k ShapeKind) String() string {
	switch k {
	case PathShape:
		return "path"
	case RefShape:
		return "ref"
	default:
		return "invalid"
	}
}

// Shape is one dot of a layer's output. Path is set for PathShape, Ref
// for RefShape.
type Shape struct {
	Kind ShapeKind
	Path *Path
	Ref  TemplateRef
}

// TemplateRef places the shared dot template at a center, uniformly
// scaled. Scale is 1 when the layer's dot size matches the template.
type TemplateRef struct {
	Center Point
	Scale  float64
}

// TemplateRequest describes the dot template that referencing shapes
// expect: a filled circle of diameter Size centered on the origin.
type TemplateRequest struct {
	Size float64
}

// emitShapes converts centers to output shapes. In preview mode every
// center becomes a literal circle of the layer's dot size. Otherwise
// centers become template references scaled from the canonical template
// size to the layer's dot size, and the template request is returned
// alongside.
func emitShapes(centers []Center, params Params, preview bool, canonicalSize float64) ([]Shape, *TemplateRequest) {
	shapes := make([]Shape, 0, len(centers))
	if preview {
		for _, c := range centers {
			shapes = append(shapes, Shape{Kind: PathShape, Path: Circle(c.Pos, params.DotSize/2)})
		}
		return shapes, nil
	}
	scale := 1.0
	if params.DotSize != canonicalSize {
		scale = params.DotSize / canonicalSize
	}
	for _, c := range centers {
		shapes = append(shapes, Shape{Kind: RefShape, Ref: TemplateRef{Center: c.Pos, Scale: scale}})
	}
	return shapes, &TemplateRequest{Size: canonicalSize}
}
