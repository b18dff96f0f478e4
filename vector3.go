package polydraw

// Vector3 is a translation in world space.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{
		X: x,
		Y: y,
		Z: z,
	}
}
