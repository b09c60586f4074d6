package viz

import (
	"github.com/san-kum/growlab/internal/anim"
	"github.com/san-kum/growlab/internal/turtle"
)

// Viewport maps turtle-local coordinates onto canvas sub-pixels with a
// uniform scale (aspect preserved) and centered translation. The turtle
// never learns about screen space; this is the only place the two
// coordinate systems meet.
type Viewport struct {
	scale      float64
	offX, offY float64
}

// FitViewport computes the transform that fits bounds into a pxW x pxH
// pixel grid with the given margin on every side.
func FitViewport(bounds turtle.Rect, pxW, pxH, margin int) Viewport {
	availW := float64(pxW - 2*margin)
	availH := float64(pxH - 2*margin)
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}

	scale := 1.0
	if w, h := bounds.Width(), bounds.Height(); w > 0 || h > 0 {
		sx, sy := availW, availH
		if w > 0 {
			sx = availW / w
		}
		if h > 0 {
			sy = availH / h
		}
		scale = sx
		if sy < sx {
			scale = sy
		}
	}

	// Center the scaled drawing inside the pixel grid.
	cx := (bounds.MinX + bounds.MaxX) / 2
	cy := (bounds.MinY + bounds.MaxY) / 2
	return Viewport{
		scale: scale,
		offX:  float64(pxW)/2 - cx*scale,
		offY:  float64(pxH)/2 - cy*scale,
	}
}

// Apply transforms one segment into pixel coordinates.
func (v Viewport) Apply(s turtle.Segment) (x0, y0, x1, y1 int) {
	x0 = int(s.X1*v.scale + v.offX)
	y0 = int(s.Y1*v.scale + v.offY)
	x1 = int(s.X2*v.scale + v.offX)
	y1 = int(s.Y2*v.scale + v.offY)
	return
}

// CanvasSurface strokes turtle segments onto a canvas through a viewport.
// It is the anim.Surface the scheduler draws on.
type CanvasSurface struct {
	Canvas *Canvas
	View   Viewport
}

// NewSurface builds a surface whose viewport fits segs onto the canvas.
func NewSurface(canvas *Canvas, segs []turtle.Segment) *CanvasSurface {
	pxW, pxH := canvas.PixelSize()
	return &CanvasSurface{
		Canvas: canvas,
		View:   FitViewport(turtle.Bounds(segs), pxW, pxH, 2),
	}
}

func (s *CanvasSurface) Clear() {
	s.Canvas.Clear()
}

func (s *CanvasSurface) Stroke(segs []turtle.Segment) {
	for _, seg := range segs {
		s.Canvas.Line(s.View.Apply(seg))
	}
}

var _ anim.Surface = (*CanvasSurface)(nil)
