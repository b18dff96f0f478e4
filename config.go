package polydraw

import (
	"fmt"
	"image/color"
	"time"
)

// Config holds the window, colour and interaction settings.
type Config struct {
	Title  string
	Width  int
	Height int
	Zoom   float64

	Background   color.RGBA
	EdgeCol      color.RGBA
	FillCol      color.RGBA
	OutlineCol   color.RGBA
	StrokeWidth  float32
	Grid         GridConfig
	PendingAlpha float64

	// PlaceDebounce is how long primary clicks are ignored after a clone
	// is placed.
	PlaceDebounce time.Duration

	// NewPolygonAfterComplete makes a primary click on a completed polygon
	// start a new one. When false such clicks are ignored.
	NewPolygonAfterComplete bool
}

// DefaultConfig returns an 800x600 window at zoom 1 with the default grid.
func DefaultConfig() Config {
	return Config{
		Title:                   "polydraw",
		Width:                   800,
		Height:                  600,
		Zoom:                    1,
		Background:              color.RGBA{R: 20, G: 20, B: 24, A: 255},
		EdgeCol:                 color.RGBA{R: 255, G: 255, B: 255, A: 255},
		FillCol:                 color.RGBA{R: 40, G: 140, B: 220, A: 255},
		OutlineCol:              color.RGBA{R: 255, G: 200, B: 0, A: 255},
		StrokeWidth:             2,
		Grid:                    DefaultGridConfig(),
		PendingAlpha:            0.5,
		PlaceDebounce:           150 * time.Millisecond,
		NewPolygonAfterComplete: true,
	}
}

// Validate rejects sizes, zoom and grid settings that cannot be drawn.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Zoom < minZoom || c.Zoom > maxZoom {
		return fmt.Errorf("zoom %v out of range [%v, %v]", c.Zoom, minZoom, maxZoom)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke width must be positive, got %v", c.StrokeWidth)
	}
	if c.Grid.Spacing <= 0 || c.Grid.Extent <= 0 {
		return fmt.Errorf("invalid grid: extent %v spacing %v", c.Grid.Extent, c.Grid.Spacing)
	}
	if c.PendingAlpha < 0 || c.PendingAlpha > 1 {
		return fmt.Errorf("pending alpha %v not in [0, 1]", c.PendingAlpha)
	}
	if c.PlaceDebounce < 0 {
		return fmt.Errorf("negative place debounce %v", c.PlaceDebounce)
	}
	return nil
}

// Style returns the polygon colours from the config.
func (c Config) Style() Style {
	return Style{
		EdgeCol:     c.EdgeCol,
		FillCol:     c.FillCol,
		OutlineCol:  c.OutlineCol,
		StrokeWidth: c.StrokeWidth,
	}
}
