package polydraw

import "github.com/go-gl/mathgl/mgl64"

// Point3d is a position in world space. Points on the drawing plane have Z == 0.
type Point3d struct {
	X float64
	Y float64
	Z float64
}

// NewPoint3d returns the point (x, y, z).
func NewPoint3d(x, y, z float64) Point3d {
	return Point3d{
		X: x,
		Y: y,
		Z: z,
	}
}

func pointFromVec3(v mgl64.Vec3) Point3d {
	return Point3d{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vec3 converts the point for use with mgl64.
func (p Point3d) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}
