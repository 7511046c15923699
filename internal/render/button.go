package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bemine/bemine/internal/pointer"
)

// Rect is a screen rectangle; hit testing lives in package pointer.
type Rect = pointer.Rect

// ButtonRect sizes a pill button around label at the given scale, centered
// on (cx, cy).
func ButtonRect(label string, cx, cy, scale float64) Rect {
	w := MeasureText(label, scale) + 2*LineHeight(scale)
	h := LineHeight(scale) * 1.75
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// DrawButton renders a pill-shaped button with a drop shadow and a centered
// label.
func DrawButton(screen *ebiten.Image, tr *TextRenderer, r Rect, label string, scale float64, fill, ink color.Color) {
	drawPill(screen, r.Translate(0, 4), Palette[ColorShadow])
	drawPill(screen, r, fill)

	cx, cy := r.Center()
	tr.DrawCentered(screen, label, cx, cy-LineHeight(scale)/2, scale, ink)
}

func drawPill(screen *ebiten.Image, r Rect, clr color.Color) {
	rad := float32(r.H / 2)
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	if w < h {
		vector.DrawFilledCircle(screen, x+w/2, y+rad, rad, clr, true)
		return
	}
	vector.DrawFilledRect(screen, x+rad, y, w-2*rad, h, clr, false)
	vector.DrawFilledCircle(screen, x+rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(screen, x+w-rad, y+rad, rad, clr, true)
}

// DrawCard renders the rounded-looking content card with a thin border.
func DrawCard(screen *ebiten.Image, r Rect) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(screen, x+6, y+8, w, h, Palette[ColorShadow], false)
	vector.DrawFilledRect(screen, x, y, w, h, Palette[ColorCard], false)
	vector.StrokeRect(screen, x, y, w, h, 2, Palette[ColorPink], false)
}
