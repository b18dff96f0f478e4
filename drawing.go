package polydraw

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter receives projected screen-space geometry.
type Painter interface {
	FillPath(xp, yp []float32, clr color.RGBA)
	StrokePath(xp, yp []float32, closed bool, strokeWidth float32, clr color.RGBA)
}

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

type imagePainter struct {
	screen *ebiten.Image
}

// NewImagePainter returns a Painter that draws onto screen.
func NewImagePainter(screen *ebiten.Image) Painter {
	return &imagePainter{screen: screen}
}

func (p *imagePainter) FillPath(xp, yp []float32, clr color.RGBA) {
	fillPolygon(p.screen, xp, yp, clr)
}

func (p *imagePainter) StrokePath(xp, yp []float32, closed bool, strokeWidth float32, clr color.RGBA) {
	strokePolyline(p.screen, xp, yp, closed, strokeWidth, clr)
}

func buildPath(xp, yp []float32, closed bool) *vector.Path {
	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	if closed {
		path.Close()
	}
	return &path
}

// fillPolygon fills the outline with the non-zero rule, so concave and
// self-intersecting outlines render without triangulating them first.
func fillPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 || len(xp) != len(yp) {
		return
	}

	path := buildPath(xp, yp, true)
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawSolid(screen, vertices, indices, clr, ebiten.FillRuleNonZero)
}

func strokePolyline(screen *ebiten.Image, xp, yp []float32, closed bool, strokeWidth float32, clr color.RGBA) {
	// We need at least 2 points to draw a line.
	if len(xp) < 2 || len(xp) != len(yp) {
		return
	}

	path := buildPath(xp, yp, closed)
	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)
	drawSolid(screen, vertices, indices, clr, ebiten.FillRuleFillAll)
}

func drawSolid(screen *ebiten.Image, vertices []ebiten.Vertex, indices []uint16, clr color.RGBA, rule ebiten.FillRule) {
	cr, cg, cb, ca := colorFloats(clr)

	// SrcX/SrcY point into the white sub image so the vertex colour is used as is.
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	}
	screen.DrawTriangles(vertices, indices, whitePixel(), op)
}
