package polydraw

import (
	"image/color"
	"math"
)

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// withAlpha scales the alpha channel of a straight-alpha colour.
func withAlpha(clr color.RGBA, alpha float64) color.RGBA {
	alpha = clamp(alpha, 0, 1)
	clr.A = uint8(math.Round(float64(clr.A) * alpha))
	return clr
}

// colorFloats converts a straight-alpha colour to the 0-1 floats Ebiten vertices use.
func colorFloats(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255.0,
		float32(clr.G) / 255.0,
		float32(clr.B) / 255.0,
		float32(clr.A) / 255.0
}
