package polydraw

import (
	"image/color"
	"slices"
)

// ObjectKind says how an Object3d is painted.
type ObjectKind int

const (
	// KindLine is a single open segment.
	KindLine ObjectKind = iota
	// KindOutline is a closed loop through all of its points.
	KindOutline
	// KindFill is a filled surface built from a closed Shape.
	KindFill
	// KindGrid is a background grid segment.
	KindGrid
)

func (k ObjectKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindOutline:
		return "outline"
	case KindFill:
		return "fill"
	case KindGrid:
		return "grid"
	}
	return "unknown"
}

// Object3d is a renderable display object. Its points are in object space;
// the position is applied when the object is painted, so moving an object
// never rewrites its geometry.
type Object3d struct {
	Kind        ObjectKind
	Col         color.RGBA
	StrokeWidth float32
	// Alpha scales Col's alpha channel when painting.
	Alpha float64

	points   []Point3d
	shape    *Shape
	position Vector3
}

func newObject(kind ObjectKind, pnts []Point3d, col color.RGBA, width float32) *Object3d {
	return &Object3d{
		Kind:        kind,
		Col:         col,
		StrokeWidth: width,
		Alpha:       1,
		points:      slices.Clone(pnts),
	}
}

// NewLine creates a segment from a to b.
func NewLine(a, b Point3d, col color.RGBA, width float32) *Object3d {
	return newObject(KindLine, []Point3d{a, b}, col, width)
}

// NewOutline creates a closed loop through pnts.
func NewOutline(pnts []Point3d, col color.RGBA, width float32) *Object3d {
	return newObject(KindOutline, pnts, col, width)
}

// NewFill creates a filled surface from a closed shape.
func NewFill(s *Shape, col color.RGBA) *Object3d {
	o := newObject(KindFill, s.Points(), col, 0)
	o.shape = s
	return o
}

func newGridLine(a, b Point3d, col color.RGBA, width float32) *Object3d {
	return newObject(KindGrid, []Point3d{a, b}, col, width)
}

// Points returns a copy of the object-space points.
func (o *Object3d) Points() []Point3d {
	return slices.Clone(o.points)
}

// Shape is only set on fills.
func (o *Object3d) Shape() *Shape {
	return o.shape
}

func (o *Object3d) SetPosition(x, y, z float64) {
	o.position = NewVector3(x, y, z)
}

func (o *Object3d) GetPosition() Vector3 {
	return o.position
}

// WorldPoints returns the points translated by the object's position.
func (o *Object3d) WorldPoints() []Point3d {
	return TransformPoints(TransMatrix(o.position.X, o.position.Y, o.position.Z), o.points)
}

// PaintObject projects the object through cam and hands it to p.
func (o *Object3d) PaintObject(p Painter, cam *Camera) {
	if len(o.points) == 0 || o.Alpha <= 0 {
		return
	}

	// object space to world space, then world to NDC
	objToWorld := TransMatrix(o.position.X, o.position.Y, o.position.Z)
	objToNDC := cam.ViewProjection().Mul4(objToWorld)

	ndc := TransformPoints(objToNDC, o.points)
	xs := make([]float32, len(ndc))
	ys := make([]float32, len(ndc))
	for i, pt := range ndc {
		x, y := cam.ndcToScreen(pt.Vec3())
		xs[i], ys[i] = float32(x), float32(y)
	}

	clr := withAlpha(o.Col, o.Alpha)
	switch o.Kind {
	case KindFill:
		p.FillPath(xs, ys, clr)
	case KindOutline:
		p.StrokePath(xs, ys, true, o.StrokeWidth, clr)
	case KindLine, KindGrid:
		p.StrokePath(xs, ys, false, o.StrokeWidth, clr)
	}
}
