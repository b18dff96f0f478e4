package polydraw

import (
	"log"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Mode selects how pointer input is interpreted.
type Mode int

const (
	// ModeDrawing adds a vertex on every primary press.
	ModeDrawing Mode = iota
	// ModeIdle is entered once the active polygon is complete.
	ModeIdle
	// ModePlacing moves a pending clone with the pointer until a secondary
	// press commits it.
	ModePlacing
)

func (m Mode) String() string {
	switch m {
	case ModeDrawing:
		return "drawing"
	case ModeIdle:
		return "idle"
	case ModePlacing:
		return "placing"
	}
	return "unknown"
}

// Command is one of the toolbar actions.
type Command int

const (
	// CommandComplete closes and fills the active polygon.
	CommandComplete Command = iota
	// CommandDuplicate starts placing a copy of the completed polygon.
	CommandDuplicate
	// CommandReset clears the scene back to the grid.
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandComplete:
		return "Complete"
	case CommandDuplicate:
		return "Duplicate"
	case CommandReset:
		return "Reset"
	}
	return "Unknown"
}

// settleAnim fades a freshly placed shape in. Primary presses are ignored
// while it runs.
type settleAnim struct {
	tween   *gween.Tween
	objects []*Object3d
}

// Controller turns pointer input and toolbar commands into polygon
// operations. Every input is dispatched on the current Mode.
type Controller struct {
	cfg    Config
	world  *World
	active *Polygon
	// pending is the clone being placed, nil outside ModePlacing.
	pending *Polygon

	mode   Mode
	settle *settleAnim
}

// NewController creates a world holding only the background grid and an
// empty active polygon, ready for drawing.
func NewController(cfg Config) *Controller {
	cam := NewOrthoCamera(cfg.Width, cfg.Height)
	cam.SetZoom(cfg.Zoom)

	c := &Controller{
		cfg:   cfg,
		world: NewWorld(cam),
		mode:  ModeDrawing,
	}
	c.active = NewPolygon(c.world, cfg.Style())
	AddGrid(c.world, cfg.Grid)
	return c
}

// World returns the scene the controller edits.
func (c *Controller) World() *World {
	return c.world
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// Active returns the polygon currently being drawn.
func (c *Controller) Active() *Polygon {
	return c.active
}

// Pending returns the clone being placed, or nil.
func (c *Controller) Pending() *Polygon {
	return c.pending
}

// Settling reports whether the post-placement debounce is running.
func (c *Controller) Settling() bool {
	return c.settle != nil
}

// Resize follows the window: the canvas always fills it.
func (c *Controller) Resize(width, height int) {
	c.world.Camera().SetViewport(width, height)
}

func (c *Controller) toWorld(px, py float64) (Point3d, bool) {
	return c.world.Camera().ScreenToWorld(px, py)
}

// PrimaryPress handles a primary button press at pixel (px, py).
func (c *Controller) PrimaryPress(px, py float64) {
	if c.settle != nil {
		return
	}

	switch c.mode {
	case ModeDrawing:
		if pt, ok := c.toWorld(px, py); ok {
			c.active.AddVertex(pt)
		}
	case ModeIdle:
		if !c.cfg.NewPolygonAfterComplete {
			return
		}
		pt, ok := c.toWorld(px, py)
		if !ok {
			return
		}
		// the finished polygon stays on display as a plain shape
		c.active.Detach()
		c.active = NewPolygon(c.world, c.cfg.Style())
		c.active.AddVertex(pt)
		c.mode = ModeDrawing
	case ModePlacing:
	}
}

// PointerMove sets the pending clone's origin to the world point under the
// pointer.
func (c *Controller) PointerMove(px, py float64) {
	switch c.mode {
	case ModePlacing:
		if c.pending == nil {
			return
		}
		pt, ok := c.toWorld(px, py)
		if !ok {
			return
		}
		c.pending.SetPosition(pt.X, pt.Y, pt.Z)
	case ModeDrawing, ModeIdle:
	}
}

// SecondaryPress commits the pending clone where it currently is.
func (c *Controller) SecondaryPress(px, py float64) {
	switch c.mode {
	case ModePlacing:
		if c.pending == nil {
			return
		}
		pos := c.pending.Position()
		placed := c.pending.Detach()
		c.pending = nil
		c.mode = c.restingMode()
		log.Printf("Clone placed at (%.1f, %.1f)", pos.X, pos.Y)
		c.startSettle(placed)
	case ModeDrawing, ModeIdle:
	}
}

func (c *Controller) restingMode() Mode {
	if c.active.IsComplete() {
		return ModeIdle
	}
	return ModeDrawing
}

func (c *Controller) startSettle(objects []*Object3d) {
	if c.cfg.PlaceDebounce <= 0 {
		for _, o := range objects {
			o.Alpha = 1
		}
		return
	}
	c.settle = &settleAnim{
		tween:   gween.New(float32(c.cfg.PendingAlpha), 1, float32(c.cfg.PlaceDebounce.Seconds()), ease.OutQuad),
		objects: objects,
	}
}

// Update advances time-based state by dt seconds.
func (c *Controller) Update(dt float64) {
	if c.settle == nil {
		return
	}
	alpha, done := c.settle.tween.Update(float32(dt))
	if done {
		alpha = 1
	}
	for _, o := range c.settle.objects {
		o.Alpha = float64(alpha)
	}
	if done {
		c.settle = nil
	}
}

// Complete finishes the active polygon. It reports whether anything changed.
func (c *Controller) Complete() bool {
	if c.mode == ModePlacing || !c.active.Complete() {
		return false
	}
	c.mode = ModeIdle
	log.Printf("Polygon completed with %d vertices", c.active.VertexCount())
	return true
}

// Duplicate clones the completed active polygon and starts placing it.
func (c *Controller) Duplicate() bool {
	if c.mode == ModePlacing || c.pending != nil {
		return false
	}
	clone := c.active.Clone(c.world)
	if clone == nil {
		return false
	}
	clone.SetAlpha(c.cfg.PendingAlpha)
	c.pending = clone
	c.mode = ModePlacing
	log.Println("Placing clone, right click to drop it")
	return true
}

// Reset empties the active polygon, drops any pending clone and rebuilds
// the world with just the background grid.
func (c *Controller) Reset() {
	c.active.Clear()
	if c.pending != nil {
		c.pending.Clear()
		c.pending = nil
	}
	c.settle = nil
	c.world.Clear()
	AddGrid(c.world, c.cfg.Grid)
	c.mode = ModeDrawing
	log.Println("Scene reset")
}

// Execute runs a toolbar command.
func (c *Controller) Execute(cmd Command) bool {
	switch cmd {
	case CommandComplete:
		return c.Complete()
	case CommandDuplicate:
		return c.Duplicate()
	case CommandReset:
		c.Reset()
		return true
	}
	return false
}
