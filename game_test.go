package polydraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonCentre(t *testing.T, g *Game, cmd Command) (float64, float64) {
	t.Helper()
	for _, b := range g.toolbar.Buttons() {
		if b.Command == cmd {
			return b.Rect.X + b.Rect.Width/2, b.Rect.Y + b.Rect.Height/2
		}
	}
	require.FailNow(t, "no button for command", cmd.String())
	return 0, 0
}

func TestGamePrimaryPressRoutesToolbarClicks(t *testing.T) {
	g := NewGame(DefaultConfig())
	c := g.Controller()

	// Duplicate on an open polygon does nothing and must not add a vertex
	g.primaryPress(buttonCentre(t, g, CommandDuplicate))
	assert.Equal(t, 0, c.Active().VertexCount())
	assert.Equal(t, ModeDrawing, c.Mode())

	g.primaryPress(cx, cy)
	g.primaryPress(cx+100, cy)
	g.primaryPress(cx, cy+100)
	assert.Equal(t, 3, c.Active().VertexCount())

	g.primaryPress(buttonCentre(t, g, CommandComplete))
	assert.True(t, c.Active().IsComplete())
	assert.Equal(t, ModeIdle, c.Mode())
	assert.Equal(t, 3, c.Active().VertexCount())

	g.primaryPress(buttonCentre(t, g, CommandDuplicate))
	assert.Equal(t, ModePlacing, c.Mode())
	require.NotNil(t, c.Pending())

	g.primaryPress(buttonCentre(t, g, CommandReset))
	assert.Equal(t, ModeDrawing, c.Mode())
	assert.Nil(t, c.Pending())
	gridOnly(t, c)
}

func TestGamePrimaryPressOffToolbarAddsVertex(t *testing.T) {
	g := NewGame(DefaultConfig())

	g.primaryPress(cx, cy)
	require.Equal(t, 1, g.Controller().Active().VertexCount())
	assertPointNear(t, NewPoint3d(0, 0, 0), g.Controller().Active().Vertices()[0])
}
