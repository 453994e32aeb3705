package assets

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// CaptionStroke is the outline width around caption glyphs, in pixels.
const CaptionStroke = 12

// RenderCaption draws a multi-line caption once into a texture: white,
// centered lines with a black outline. The caption is tinted when drawn.
func RenderCaption(face font.Face, s string) *ebiten.Image {
	lines := strings.Split(s, "\n")
	m := face.Metrics()
	lineHeight := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	width := 1
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	pad := CaptionStroke
	img := ebiten.NewImage(width+2*pad, lineHeight*len(lines)+2*pad)

	offsets := strokeOffsets(CaptionStroke)
	for i, line := range lines {
		w := font.MeasureString(face, line).Ceil()
		x := pad + (width-w)/2
		y := pad + ascent + i*lineHeight
		for _, o := range offsets {
			text.Draw(img, line, face, x+o[0], y+o[1], color.Black)
		}
	}
	for i, line := range lines {
		w := font.MeasureString(face, line).Ceil()
		x := pad + (width-w)/2
		y := pad + ascent + i*lineHeight
		text.Draw(img, line, face, x, y, color.White)
	}
	return img
}

// strokeOffsets samples a ring of radius r.
func strokeOffsets(r int) [][2]int {
	var out [][2]int
	for dy := -r; dy <= r; dy += r / 3 {
		for dx := -r; dx <= r; dx += r / 3 {
			if d := dx*dx + dy*dy; d > 0 && d <= r*r {
				out = append(out, [2]int{dx, dy})
			}
		}
	}
	return out
}
