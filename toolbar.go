package polydraw

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	buttonWidth   = 96
	buttonHeight  = 24
	buttonMargin  = 8
	buttonPadding = 6
)

// HitRect is an axis-aligned rectangle in screen pixels.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Button binds a command to its keyboard shortcut and on-screen rectangle.
type Button struct {
	Command  Command
	Shortcut ebiten.Key
	Rect     HitRect
}

// Label includes the keyboard shortcut.
func (b Button) Label() string {
	return b.Command.String() + " [" + b.Shortcut.String() + "]"
}

// Toolbar is the row of command buttons along the top of the window.
type Toolbar struct {
	buttons []Button
	fill    color.RGBA
}

// NewToolbar returns the Complete, Duplicate and Reset buttons laid out
// left to right.
func NewToolbar() *Toolbar {
	t := &Toolbar{
		buttons: []Button{
			{Command: CommandComplete, Shortcut: ebiten.KeyC},
			{Command: CommandDuplicate, Shortcut: ebiten.KeyD},
			{Command: CommandReset, Shortcut: ebiten.KeyR},
		},
		fill: color.RGBA{R: 70, G: 70, B: 80, A: 230},
	}
	t.Layout()
	return t
}

// Layout places the buttons left to right from the top left corner.
func (t *Toolbar) Layout() {
	for i := range t.buttons {
		t.buttons[i].Rect = HitRect{
			X:      float64(buttonMargin + i*(buttonWidth+buttonMargin)),
			Y:      buttonMargin,
			Width:  buttonWidth,
			Height: buttonHeight,
		}
	}
}

func (t *Toolbar) Buttons() []Button {
	return append([]Button(nil), t.buttons...)
}

// HitTest returns the command of the button under (x, y).
func (t *Toolbar) HitTest(x, y float64) (Command, bool) {
	for _, b := range t.buttons {
		if b.Rect.Contains(x, y) {
			return b.Command, true
		}
	}
	return 0, false
}

func (t *Toolbar) Draw(screen *ebiten.Image) {
	for _, b := range t.buttons {
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), t.fill, false)
		ebitenutil.DebugPrintAt(screen, b.Label(), int(r.X)+buttonPadding, int(r.Y)+buttonPadding)
	}
}
