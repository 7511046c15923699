package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bemine/bemine/internal/celebrate"
	"github.com/bemine/bemine/internal/game"
	"github.com/bemine/bemine/internal/render"
)

const (
	heartCount = 14
	fadeIn     = 400 * time.Millisecond
)

func buttonScale(compact bool) float64 {
	if compact {
		return 1.5
	}
	return 2
}

func titleScale(compact bool) float64 {
	if compact {
		return 2
	}
	return 3
}

// faded scales a color's alpha, keeping it premultiplied.
func faded(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// cardRect is the content panel centered in the window.
func (g *Game) cardRect(height float64) render.Rect {
	w, h := float64(g.width), float64(g.height)
	cw := math.Min(w-32, 720)
	ch := math.Min(h-32, height)
	return render.Rect{X: (w - cw) / 2, Y: (h - ch) / 2, W: cw, H: ch}
}

// drawLines renders wrapped, centered text and returns the y below it.
func (g *Game) drawLines(screen *ebiten.Image, s string, width, y, scale float64, clr color.Color) float64 {
	cols := int(width / (render.GlyphWidth * scale))
	for _, line := range render.WrapText(s, cols) {
		g.text.DrawCentered(screen, line, float64(g.width)/2, y, scale, clr)
		y += render.LineHeight(scale) * 1.25
	}
	return y
}

// drawHearts floats a few hearts up the background.
func (g *Game) drawHearts(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	for i := 0; i < heartCount; i++ {
		speed := 0.4 + float64(i%4)*0.25
		x := math.Mod(float64(i)*0.137*w+20*math.Sin(float64(g.ticks)/60+float64(i)), w)
		y := h + 40 - math.Mod(float64(g.ticks)*speed+float64(i)*97, h+80)
		scale := 2 + float64(i%3)
		g.text.DrawText(screen, "♥", x, y, scale, faded(render.Palette[render.ColorPink], 0.35))
	}
}

func (g *Game) drawProposal(screen *ebiten.Image, s game.Session) {
	compact := s.Compact()
	card := g.cardRect(380)
	render.DrawCard(screen, card)

	ts := titleScale(compact)
	y := card.Y + 40
	g.text.DrawCentered(screen, "♥ ♥ ♥", float64(g.width)/2, y, ts, render.Palette[render.ColorRose])
	y += render.LineHeight(ts) * 1.75
	g.drawLines(screen, g.app.Script.Question, card.W-48, y, ts, render.Palette[render.ColorCrimson])

	mx, my := ebiten.CursorPosition()
	bs := buttonScale(compact)

	yesFill := render.Palette[render.ColorRose]
	if g.yesRect.Contains(float64(mx), float64(my)) {
		yesFill = render.Palette[render.ColorRoseHi]
	}
	render.DrawButton(screen, g.text, g.yesRect, g.app.Script.Affirmative, bs*s.Scale(),
		yesFill, render.Palette[render.ColorWhite])

	noFill := render.Palette[render.ColorNo]
	if g.pointer.HoveringNo() {
		noFill = render.Palette[render.ColorNoHi]
	}
	render.DrawButton(screen, g.text, g.noRect, s.Caption(), bs,
		noFill, render.Palette[render.ColorWhite])
}

func (g *Game) drawCelebration(screen *ebiten.Image, s game.Session) {
	compact := s.Compact()
	ts := titleScale(compact)
	cel := g.app.Script.Celebration
	w := float64(g.width)

	y := 24.0
	y = g.drawLines(screen, cel.Title, w-48, y, ts, render.Palette[render.ColorCrimson])

	show := g.app.Slideshow
	if len(g.photos) > 0 {
		img := g.photos[show.Index()]
		b := img.Bounds()
		var op ebiten.DrawImageOptions
		op.GeoM.Translate((w-float64(b.Dx()))/2, y+8+float64(photoHeight-b.Dy())/2)
		since := show.Since(g.app.Now())
		op.ColorScale.ScaleAlpha(float32(math.Min(1, float64(since)/float64(fadeIn))))
		screen.DrawImage(img, &op)

		if show.Count() > 1 {
			label := fmt.Sprintf("%d / %d", show.Index()+1, show.Count())
			g.text.DrawCentered(screen, label, w/2, y+photoHeight+16, 1, render.Palette[render.ColorMuted])
		}
	}
	y += photoHeight + 48

	for _, line := range cel.Lines {
		y = g.drawLines(screen, line, w-48, y, 1.5, render.Palette[render.ColorInk])
	}

	mx, my := ebiten.CursorPosition()
	fill := render.Palette[render.ColorRose]
	if g.moreRect.Contains(float64(mx), float64(my)) {
		fill = render.Palette[render.ColorRoseHi]
	}
	render.DrawButton(screen, g.text, g.moreRect, cel.Continue, buttonScale(compact),
		fill, render.Palette[render.ColorWhite])
}

func (g *Game) drawLetter(screen *ebiten.Image, s game.Session) {
	compact := s.Compact()
	letter := g.app.Script.Letter
	card := g.cardRect(float64(g.height))
	render.DrawCard(screen, card)

	body := 1.5
	if compact {
		body = 1
	}
	width := card.W - 64
	y := card.Y + 32
	y = g.drawLines(screen, letter.Greeting, width, y, titleScale(compact), render.Palette[render.ColorCrimson])
	y += 12
	for _, p := range letter.Paragraphs {
		y = g.drawLines(screen, p, width, y, body, render.Palette[render.ColorInk])
		y += render.LineHeight(body)
	}
	g.drawLines(screen, letter.Closing, width, y, titleScale(compact)*0.75, render.Palette[render.ColorCrimson])
}

func (g *Game) drawConfetti(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	g.app.Confetti.Each(func(p celebrate.Particle) {
		op = ebiten.DrawImageOptions{}
		op.GeoM.Scale(10, 5)
		op.GeoM.Translate(-5, -2.5)
		op.GeoM.Rotate(p.Tilt)
		op.GeoM.Translate(p.X+6*math.Cos(p.Wobble), p.Y+6*math.Sin(p.Wobble))
		op.ColorScale.ScaleWithColor(p.Color)
		op.ColorScale.ScaleAlpha(float32(p.Alpha))
		screen.DrawImage(g.pixel, &op)
	})
}
