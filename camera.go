package polydraw

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	minZoom = 0.05
	maxZoom = 50.0
)

// Camera is an orthographic camera looking at the drawing plane. One world
// unit maps to one pixel at zoom 1.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	Near   float64
	Far    float64
	// PlaneZ is the world Z of the plane screen points are unprojected onto.
	PlaneZ float64

	zoom   float64
	width  int
	height int
}

// NewOrthoCamera creates a camera 10 units above the origin looking down -Z
// with a viewport of width x height pixels.
func NewOrthoCamera(width, height int) *Camera {
	return &Camera{
		Eye:    mgl64.Vec3{0, 0, 10},
		Target: mgl64.Vec3{0, 0, 0},
		Up:     mgl64.Vec3{0, 1, 0},
		Near:   0.1,
		Far:    1000,
		zoom:   1,
		width:  width,
		height: height,
	}
}

func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetZoom clamps z to a sane range.
func (c *Camera) SetZoom(z float64) {
	c.zoom = clamp(z, minZoom, maxZoom)
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	hw := float64(c.width) / 2 / c.zoom
	hh := float64(c.height) / 2 / c.zoom
	return mgl64.Ortho(-hw, hw, -hh, hh, c.Near, c.Far)
}

// ViewProjection maps world space to normalized device coordinates.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// PlaneDepth is the NDC depth of the drawing plane.
func (c *Camera) PlaneDepth() float64 {
	plane := mgl64.Vec3{c.Target.X(), c.Target.Y(), c.PlaneZ}
	return mgl64.TransformCoordinate(plane, c.ViewProjection()).Z()
}

// WorldToScreen projects a world point to pixel coordinates, origin top left.
func (c *Camera) WorldToScreen(p Point3d) (float64, float64) {
	ndc := mgl64.TransformCoordinate(p.Vec3(), c.ViewProjection())
	return c.ndcToScreen(ndc)
}

func (c *Camera) ndcToScreen(ndc mgl64.Vec3) (float64, float64) {
	x := (ndc.X() + 1) / 2 * float64(c.width)
	y := (1 - ndc.Y()) / 2 * float64(c.height)
	return x, y
}

// ScreenToWorld maps pixel coordinates to a point on the drawing plane.
// The pixel is normalized to [-1, 1] with the vertical axis inverted and
// unprojected through the inverse view-projection. ok is false when the
// viewport is empty or the camera matrix cannot be inverted.
func (c *Camera) ScreenToWorld(px, py float64) (p Point3d, ok bool) {
	if c.width <= 0 || c.height <= 0 {
		return Point3d{}, false
	}
	vp := c.ViewProjection()
	if !invertible(vp) {
		return Point3d{}, false
	}

	ndc := mgl64.Vec3{
		2*px/float64(c.width) - 1,
		1 - 2*py/float64(c.height),
		c.PlaneDepth(),
	}
	return pointFromVec3(mgl64.TransformCoordinate(ndc, vp.Inv())), true
}
