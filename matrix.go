package polydraw

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TransMatrix returns the homogeneous translation matrix for (x, y, z).
func TransMatrix(x, y, z float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// TransformPoints applies m to every point, including the perspective divide.
// The source slice is left untouched.
func TransformPoints(m mgl64.Mat4, src []Point3d) []Point3d {
	dest := make([]Point3d, len(src))
	for i, p := range src {
		dest[i] = pointFromVec3(mgl64.TransformCoordinate(p.Vec3(), m))
	}
	return dest
}

// invertible reports whether m has a usable inverse.
func invertible(m mgl64.Mat4) bool {
	return !mgl64.FloatEqualThreshold(m.Det(), 0, 1e-12)
}
