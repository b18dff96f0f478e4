package polydraw

import (
	"image/color"
	"slices"
)

// Style holds the colours a polygon builds its visuals with.
type Style struct {
	EdgeCol     color.RGBA
	FillCol     color.RGBA
	OutlineCol  color.RGBA
	StrokeWidth float32
}

// Polygon accumulates vertices in drawing order and keeps the display
// objects derived from them registered in its World.
//
// While open, each new vertex adds an edge from the previous one. Complete
// closes the polygon: it adds the fill and the edge from the last vertex
// back to the first. Completion happens at most once.
type Polygon struct {
	world *World
	style Style

	vertices  []Point3d
	edges     []*Object3d
	fill      *Object3d
	outline   *Object3d
	completed bool
	position  Vector3
}

// NewPolygon returns an empty polygon that adds its visuals to world.
func NewPolygon(world *World, style Style) *Polygon {
	return &Polygon{
		world: world,
		style: style,
	}
}

// AddVertex appends p and, if it is not the first vertex, an edge joining
// it to the previous one. Completed polygons refuse new vertices.
func (p *Polygon) AddVertex(pt Point3d) bool {
	if p.completed {
		return false
	}
	p.vertices = append(p.vertices, pt)
	n := len(p.vertices)
	if n > 1 {
		p.addEdge(p.vertices[n-2], pt)
	}
	return true
}

func (p *Polygon) addEdge(a, b Point3d) {
	edge := NewLine(a, b, p.style.EdgeCol, p.style.StrokeWidth)
	p.edges = append(p.edges, edge)
	p.world.AddObject(edge)
}

// Complete fills the polygon and adds the closing edge. It does nothing
// and returns false with fewer than three vertices or when the polygon is
// already complete.
func (p *Polygon) Complete() bool {
	if p.completed || len(p.vertices) < 3 {
		return false
	}

	shape := NewShapeFromPoints(p.vertices)
	p.fill = NewFill(shape, p.style.FillCol)
	p.world.AddObject(p.fill)

	p.addEdge(p.vertices[len(p.vertices)-1], p.vertices[0])
	p.completed = true
	return true
}

// Clone copies a completed polygon into target as a finished shape: a new
// fill plus one closed outline. The per-segment edges are not reproduced.
// Returns nil if p is not complete.
func (p *Polygon) Clone(target *World) *Polygon {
	if !p.completed || p.fill == nil {
		return nil
	}

	c := &Polygon{
		world:     target,
		style:     p.style,
		vertices:  slices.Clone(p.vertices),
		completed: true,
	}
	c.fill = NewFill(NewShapeFromPoints(c.vertices), c.style.FillCol)
	c.outline = NewOutline(c.vertices, c.style.OutlineCol, c.style.StrokeWidth)
	target.AddObject(c.fill)
	target.AddObject(c.outline)
	c.SetPosition(p.position.X, p.position.Y, p.position.Z)
	return c
}

// Clear removes all of the polygon's visuals from its world and empties it.
func (p *Polygon) Clear() {
	for _, o := range p.Visuals() {
		p.world.RemoveObject(o)
	}
	p.reset()
}

// Detach hands the polygon's visuals over to the world as plain scenery
// and empties the polygon. The returned objects stay on display.
func (p *Polygon) Detach() []*Object3d {
	visuals := p.Visuals()
	p.reset()
	return visuals
}

func (p *Polygon) reset() {
	p.vertices = nil
	p.edges = nil
	p.fill = nil
	p.outline = nil
	p.completed = false
	p.position = Vector3{}
}

// Visuals returns every display object the polygon owns.
func (p *Polygon) Visuals() []*Object3d {
	visuals := slices.Clone(p.edges)
	if p.fill != nil {
		visuals = append(visuals, p.fill)
	}
	if p.outline != nil {
		visuals = append(visuals, p.outline)
	}
	return visuals
}

// SetPosition moves the rendered fill and outline. The vertex data is not
// touched.
func (p *Polygon) SetPosition(x, y, z float64) {
	p.position = NewVector3(x, y, z)
	if p.fill != nil {
		p.fill.SetPosition(x, y, z)
	}
	if p.outline != nil {
		p.outline.SetPosition(x, y, z)
	}
}

func (p *Polygon) Position() Vector3 {
	return p.position
}

// SetAlpha applies alpha to every visual.
func (p *Polygon) SetAlpha(alpha float64) {
	for _, o := range p.Visuals() {
		o.Alpha = alpha
	}
}

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []Point3d {
	return slices.Clone(p.vertices)
}

func (p *Polygon) VertexCount() int {
	return len(p.vertices)
}

func (p *Polygon) Edges() []*Object3d {
	return slices.Clone(p.edges)
}

func (p *Polygon) Fill() *Object3d {
	return p.fill
}

func (p *Polygon) Outline() *Object3d {
	return p.outline
}

func (p *Polygon) IsComplete() bool {
	return p.completed
}
