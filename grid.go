package polydraw

import (
	"image/color"
	"math"
)

// GridConfig describes the background grid.
type GridConfig struct {
	// Extent is the half size of the grid. Lines are Extent long on each
	// side of an axis and are only drawn strictly inside it.
	Extent      float64
	Spacing     float64
	Col         color.RGBA
	AxisCol     color.RGBA
	StrokeWidth float32
}

// DefaultGridConfig returns a grid of 50 unit cells reaching 1000 units
// from the origin.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Extent:      1000,
		Spacing:     50,
		Col:         color.RGBA{R: 60, G: 60, B: 60, A: 255},
		AxisCol:     color.RGBA{R: 110, G: 110, B: 110, A: 255},
		StrokeWidth: 1,
	}
}

// LineCount is the number of lines NewGrid produces for cfg.
func (cfg GridConfig) LineCount() int {
	if cfg.Spacing <= 0 || cfg.Extent <= 0 {
		return 0
	}
	n := cfg.steps()
	return 2 * (2*n + 1)
}

// steps is the number of lines on each side of an axis. Lines lie strictly
// inside the extent, so the grid has no border.
func (cfg GridConfig) steps() int {
	return int(math.Ceil(cfg.Extent/cfg.Spacing-1e-9)) - 1
}

// NewGrid returns evenly spaced vertical and horizontal lines on the z=0
// plane. The lines through the origin use AxisCol.
func NewGrid(cfg GridConfig) []*Object3d {
	if cfg.Spacing <= 0 || cfg.Extent <= 0 {
		return nil
	}

	e := cfg.Extent
	n := cfg.steps()
	lines := make([]*Object3d, 0, 2*(2*n+1))

	for i := -n; i <= n; i++ {
		d := float64(i) * cfg.Spacing
		col := cfg.Col
		if i == 0 {
			col = cfg.AxisCol
		}
		lines = append(lines,
			newGridLine(NewPoint3d(d, -e, 0), NewPoint3d(d, e, 0), col, cfg.StrokeWidth),
			newGridLine(NewPoint3d(-e, d, 0), NewPoint3d(e, d, 0), col, cfg.StrokeWidth),
		)
	}
	return lines
}

// AddGrid adds a freshly generated grid to w.
func AddGrid(w *World, cfg GridConfig) {
	for _, l := range NewGrid(cfg) {
		w.AddObject(l)
	}
}
