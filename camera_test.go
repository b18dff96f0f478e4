package polydraw

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const float64EqualityThreshold = 1e-6

func assertPointNear(t *testing.T, want, got Point3d) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, float64EqualityThreshold, "x")
	assert.InDelta(t, want.Y, got.Y, float64EqualityThreshold, "y")
	assert.InDelta(t, want.Z, got.Z, float64EqualityThreshold, "z")
}

func TestScreenToWorldKnownPixels(t *testing.T) {
	cam := NewOrthoCamera(800, 600)

	testCases := []struct {
		name   string
		px, py float64
		want   Point3d
	}{
		{"centre", 400, 300, NewPoint3d(0, 0, 0)},
		{"right of centre", 500, 300, NewPoint3d(100, 0, 0)},
		{"below centre", 400, 400, NewPoint3d(0, -100, 0)},
		{"top left", 0, 0, NewPoint3d(-400, 300, 0)},
		{"bottom right", 800, 600, NewPoint3d(400, -300, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := cam.ScreenToWorld(tc.px, tc.py)
			require.True(t, ok)
			assertPointNear(t, tc.want, got)
		})
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	points := []Point3d{
		NewPoint3d(0, 0, 0),
		NewPoint3d(123.5, -42.25, 0),
		NewPoint3d(-380, 290, 0),
		NewPoint3d(1e-3, 7, 0),
	}

	cameras := map[string]*Camera{
		"default": NewOrthoCamera(800, 600),
	}
	zoomed := NewOrthoCamera(1024, 768)
	zoomed.SetZoom(2.5)
	cameras["zoomed"] = zoomed
	panned := NewOrthoCamera(640, 480)
	panned.Eye = mgl64.Vec3{-75, 310, 10}
	panned.Target = mgl64.Vec3{-75, 310, 0}
	cameras["panned"] = panned

	for name, cam := range cameras {
		t.Run(name, func(t *testing.T) {
			for _, p := range points {
				sx, sy := cam.WorldToScreen(p)
				back, ok := cam.ScreenToWorld(sx, sy)
				require.True(t, ok)
				assertPointNear(t, p, back)
			}
		})
	}
}

func TestScreenToWorldMatchesUnProject(t *testing.T) {
	cam := NewOrthoCamera(800, 600)
	cam.SetZoom(1.5)
	cam.Eye = mgl64.Vec3{20, -10, 10}
	cam.Target = mgl64.Vec3{20, -10, 0}

	px, py := 612.0, 147.0
	got, ok := cam.ScreenToWorld(px, py)
	require.True(t, ok)

	// UnProject expects window coordinates with the origin bottom left and
	// depth in [0, 1].
	win := mgl64.Vec3{px, 600 - py, (cam.PlaneDepth() + 1) / 2}
	want, err := mgl64.UnProject(win, cam.ViewMatrix(), cam.ProjectionMatrix(), 0, 0, 800, 600)
	require.NoError(t, err)

	assertPointNear(t, pointFromVec3(want), got)
}

func TestScreenToWorldEmptyViewport(t *testing.T) {
	cam := NewOrthoCamera(0, 600)
	_, ok := cam.ScreenToWorld(10, 10)
	assert.False(t, ok)
}

func TestWorldToScreenOriginIsViewportCentre(t *testing.T) {
	cam := NewOrthoCamera(800, 600)
	x, y := cam.WorldToScreen(NewPoint3d(0, 0, 0))
	assert.InDelta(t, 400, x, float64EqualityThreshold)
	assert.InDelta(t, 300, y, float64EqualityThreshold)
}

func TestCameraZoomScalesWorldUnits(t *testing.T) {
	cam := NewOrthoCamera(800, 600)
	cam.SetZoom(2)
	x0, _ := cam.WorldToScreen(NewPoint3d(0, 0, 0))
	x1, _ := cam.WorldToScreen(NewPoint3d(1, 0, 0))
	assert.InDelta(t, 2.0, x1-x0, float64EqualityThreshold)
}

func TestCameraZoomIsClamped(t *testing.T) {
	cam := NewOrthoCamera(800, 600)
	cam.SetZoom(0)
	assert.Equal(t, minZoom, cam.Zoom())
	cam.SetZoom(1000)
	assert.Equal(t, maxZoom, cam.Zoom())
}

func TestCameraSetViewport(t *testing.T) {
	cam := NewOrthoCamera(800, 600)
	cam.SetViewport(1280, 720)
	w, h := cam.Viewport()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)

	got, ok := cam.ScreenToWorld(640, 360)
	require.True(t, ok)
	assertPointNear(t, NewPoint3d(0, 0, 0), got)
}
