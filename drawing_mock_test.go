package polydraw

import "image/color"

type paintCall struct {
	fill   bool
	closed bool
	xp, yp []float32
	width  float32
	clr    color.RGBA
}

// recordingPainter is a mock Painter that keeps every call for inspection.
type recordingPainter struct {
	calls []paintCall
}

func (p *recordingPainter) FillPath(xp, yp []float32, clr color.RGBA) {
	p.calls = append(p.calls, paintCall{fill: true, closed: true, xp: xp, yp: yp, clr: clr})
}

func (p *recordingPainter) StrokePath(xp, yp []float32, closed bool, strokeWidth float32, clr color.RGBA) {
	p.calls = append(p.calls, paintCall{closed: closed, xp: xp, yp: yp, width: strokeWidth, clr: clr})
}

func (p *recordingPainter) fills() int {
	n := 0
	for _, c := range p.calls {
		if c.fill {
			n++
		}
	}
	return n
}
