package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/polydraw"
)

func main() {
	cfg := polydraw.DefaultConfig()

	flag.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	flag.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "camera zoom, 1 = one world unit per pixel")
	flag.Float64Var(&cfg.Grid.Spacing, "grid-spacing", cfg.Grid.Spacing, "distance between grid lines")
	flag.Float64Var(&cfg.Grid.Extent, "grid-extent", cfg.Grid.Extent, "half size of the grid")
	flag.DurationVar(&cfg.PlaceDebounce, "place-debounce", cfg.PlaceDebounce, "click cooldown after placing a clone")
	flag.BoolVar(&cfg.NewPolygonAfterComplete, "restart-on-click", cfg.NewPolygonAfterComplete,
		"start a new polygon when clicking after completing one")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(polydraw.NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
