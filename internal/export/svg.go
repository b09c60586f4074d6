package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/growlab/internal/turtle"
	"github.com/san-kum/growlab/internal/viz"
)

// SegmentsToSVG renders a segment sequence as a single SVG path fitted
// into a width x height viewport with 10% padding. Consecutive segments
// that share an endpoint continue the path; branches start a new subpath.
func SegmentsToSVG(segments []turtle.Segment, width, height int, strokeColor string) string {
	if len(segments) == 0 {
		return ""
	}

	b := turtle.Bounds(segments)
	rangeX, rangeY := b.Width(), b.Height()
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX := b.MinX - rangeX*0.1
	minY := b.MinY - rangeY*0.1
	rangeX *= 1.2
	rangeY *= 1.2

	scaleX := float64(width) / rangeX
	scaleY := float64(height) / rangeY
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	px := func(x float64) float64 { return (x - minX) * scale }
	py := func(y float64) float64 { return (y - minY) * scale }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, strokeColor))

	var lastX, lastY float64
	for i, s := range segments {
		if i == 0 || s.X1 != lastX || s.Y1 != lastY {
			sb.WriteString(fmt.Sprintf("M%.2f,%.2f ", px(s.X1), py(s.Y1)))
		}
		sb.WriteString(fmt.Sprintf("L%.2f,%.2f ", px(s.X2), py(s.Y2)))
		lastX, lastY = s.X2, s.Y2
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// CanvasToSVG converts a rendered Braille canvas to SVG dots, matching
// what the terminal showed rather than the abstract geometry.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4
	dotRadius := scale * 0.4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	dotBits := [4][2]rune{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			pattern := canvas.Cell(col, row) - 0x2800
			if pattern == 0 {
				continue
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSVG writes the segment SVG to path.
func WriteSVG(path string, segments []turtle.Segment, width, height int, strokeColor string) error {
	return os.WriteFile(path, []byte(SegmentsToSVG(segments, width, height, strokeColor)), 0644)
}
