package polydraw

import "slices"

// Shape is a planar path. A polygon's fill is built from a closed Shape:
// the first vertex starts the path, the rest follow in order and Close
// joins the last back to the first.
type Shape struct {
	points []Point3d
	closed bool
}

// NewShape returns an empty, open shape.
func NewShape() *Shape {
	return &Shape{points: make([]Point3d, 0, 8)}
}

// NewShapeFromPoints builds a closed shape through pnts.
func NewShapeFromPoints(pnts []Point3d) *Shape {
	s := NewShape()
	if len(pnts) == 0 {
		return s
	}
	s.MoveTo(pnts[0])
	for _, p := range pnts[1:] {
		s.LineTo(p)
	}
	s.Close()
	return s
}

// MoveTo starts a new path at p, discarding any previous one.
func (s *Shape) MoveTo(p Point3d) {
	s.points = append(s.points[:0], p)
	s.closed = false
}

func (s *Shape) LineTo(p Point3d) {
	s.points = append(s.points, p)
}

func (s *Shape) Close() {
	s.closed = true
}

func (s *Shape) IsClosed() bool {
	return s.closed
}

func (s *Shape) Len() int {
	return len(s.points)
}

func (s *Shape) Points() []Point3d {
	return slices.Clone(s.points)
}
