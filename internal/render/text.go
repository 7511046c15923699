package render

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextRenderer draws atlas glyphs and flat rectangles to an Ebitengine screen.
type TextRenderer struct {
	Atlas *FontAtlas
	pixel *ebiten.Image // 1x1 white pixel for fills
}

// NewTextRenderer creates a renderer over the given atlas.
func NewTextRenderer(atlas *FontAtlas) *TextRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &TextRenderer{Atlas: atlas, pixel: pixel}
}

// DrawText renders s with its top-left corner at (x, y). Each glyph is
// GlyphWidth*scale wide.
func (r *TextRenderer) DrawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	var op ebiten.DrawImageOptions
	px := x
	for _, ch := range s {
		code := GlyphFor(ch)
		if code != ' ' {
			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(px, y)
			op.ColorScale.ScaleWithColor(clr)
			screen.DrawImage(r.Atlas.Glyph(code), &op)
		}
		px += GlyphWidth * scale
	}
}

// DrawCentered renders s horizontally centered on cx.
func (r *TextRenderer) DrawCentered(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	r.DrawText(screen, s, cx-MeasureText(s, scale)/2, y, scale, clr)
}

// FillRect paints a solid rectangle.
func (r *TextRenderer) FillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(r.pixel, &op)
}

// MeasureText returns the pixel width of s at the given scale.
func MeasureText(s string, scale float64) float64 {
	return float64(utf8.RuneCountInString(s)) * GlyphWidth * scale
}

// LineHeight returns the height of one text line at the given scale.
func LineHeight(scale float64) float64 {
	return GlyphHeight * scale
}

// WrapText breaks s into lines of at most maxCols runes, splitting on
// whitespace. A single word longer than maxCols gets its own line.
func WrapText(s string, maxCols int) []string {
	if maxCols <= 0 || utf8.RuneCountInString(s) <= maxCols {
		return []string{s}
	}
	words := splitWords(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > maxCols {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}

// splitWords splits on whitespace.
func splitWords(s string) []string {
	var words []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}
