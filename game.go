package polydraw

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game binds a Controller to Ebiten's loop. Update turns device input into
// controller calls; Draw repaints the whole world every frame and changes
// nothing.
type Game struct {
	cfg          Config
	ctrl         *Controller
	toolbar      *Toolbar
	lastX, lastY int
	width        int
	height       int
}

// NewGame builds the controller and toolbar for cfg.
func NewGame(cfg Config) *Game {
	log.Println("Initializing World...")
	g := &Game{
		cfg:     cfg,
		ctrl:    NewController(cfg),
		toolbar: NewToolbar(),
		width:   cfg.Width,
		height:  cfg.Height,
	}
	log.Printf("Initialization Complete. %d grid lines.", g.ctrl.World().CountKind(KindGrid))
	return g
}

func (g *Game) Controller() *Controller {
	return g.ctrl
}

func (g *Game) Update() error {
	g.ctrl.Update(1 / float64(ebiten.TPS()))

	for _, b := range g.toolbar.Buttons() {
		if inpututil.IsKeyJustPressed(b.Shortcut) {
			g.ctrl.Execute(b.Command)
		}
	}

	x, y := ebiten.CursorPosition()
	px, py := float64(x), float64(y)

	if x != g.lastX || y != g.lastY {
		g.ctrl.PointerMove(px, py)
		g.lastX, g.lastY = x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.primaryPress(px, py)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.ctrl.SecondaryPress(px, py)
	}
	return nil
}

// primaryPress sends clicks on the toolbar to its buttons and everything
// else to the controller.
func (g *Game) primaryPress(px, py float64) {
	if cmd, ok := g.toolbar.HitTest(px, py); ok {
		g.ctrl.Execute(cmd)
		return
	}
	g.ctrl.PrimaryPress(px, py)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	g.ctrl.World().PaintObjects(NewImagePainter(screen))
	g.toolbar.Draw(screen)

	status := fmt.Sprintf("mode: %s  vertices: %d  FPS: %0.2f",
		g.ctrl.Mode(), g.ctrl.Active().VertexCount(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, status, buttonMargin, g.height-20)
}

// Layout makes the canvas the size of the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.ctrl.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
