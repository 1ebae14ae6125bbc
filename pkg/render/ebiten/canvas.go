package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// strokeWidth is the outline width in pixels.
const strokeWidth = 1.5

// canvas is the set of drawing primitives the renderer uses.
type canvas interface {
	Fill(c color.Color)
	Line(x0, y0, x1, y1 float32, c color.Color)
	Circle(cx, cy, r float32, c color.Color, filled bool)
	Text(s string, x, y int)
}

// imageCanvas draws onto an ebiten image with the vector package.
type imageCanvas struct {
	dst *ebiten.Image
}

func (ic imageCanvas) Fill(c color.Color) {
	ic.dst.Fill(c)
}

func (ic imageCanvas) Line(x0, y0, x1, y1 float32, c color.Color) {
	vector.StrokeLine(ic.dst, x0, y0, x1, y1, strokeWidth, c, true)
}

func (ic imageCanvas) Circle(cx, cy, r float32, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledCircle(ic.dst, cx, cy, r, c, true)
		return
	}
	vector.StrokeCircle(ic.dst, cx, cy, r, strokeWidth, c, true)
}

func (ic imageCanvas) Text(s string, x, y int) {
	ebitenutil.DebugPrintAt(ic.dst, s, x, y)
}
