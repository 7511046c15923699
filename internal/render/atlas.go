package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 8
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 8 // 128 codes: ASCII plus a few symbols in the control range
)

// Symbol codes drawn by hand into otherwise unused control slots.
const (
	GlyphHeart   byte = 1
	GlyphSparkle byte = 2
)

// symbolBitmaps are 7-wide pixel masks, drawn from row 4 of the cell.
var symbolBitmaps = map[byte][]string{
	GlyphHeart: {
		".##.##.",
		"#######",
		"#######",
		"#######",
		".#####.",
		"..###..",
		"...#...",
	},
	GlyphSparkle: {
		"...#...",
		"...#...",
		"..###..",
		"#######",
		"..###..",
		"...#...",
		"...#...",
	},
}

// FontAtlas holds the glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [AtlasCols * AtlasRows]*ebiten.Image
}

// NewFontAtlas builds the atlas. Printable ASCII comes from
// basicfont.Face7x13; symbols are drawn from bitmaps.
func NewFontAtlas() *FontAtlas {
	eimg := ebiten.NewImageFromImage(BuildAtlasImage())
	a := &FontAtlas{image: eimg}

	for code := range a.glyphs {
		a.glyphs[code] = eimg.SubImage(glyphRect(code)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a glyph code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if int(code) >= len(a.glyphs) {
		code = '?'
	}
	return a.glyphs[code]
}

// BuildAtlasImage rasterizes every glyph into a white-on-transparent sheet.
func BuildAtlasImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < AtlasCols*AtlasRows; code++ {
		r := glyphRect(code)
		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, r.Min.X, r.Min.Y, rune(code))
		default:
			if bm, ok := symbolBitmaps[byte(code)]; ok {
				drawBitmapGlyph(img, r.Min.X, r.Min.Y, bm)
			}
		}
	}
	return img
}

func glyphRect(code int) image.Rectangle {
	x := (code % AtlasCols) * GlyphWidth
	y := (code / AtlasCols) * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// drawFontGlyph renders one ASCII character. Face7x13 glyphs sit in the
// 8x16 cell with the baseline at y+12.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX, cellY+12),
	}
	d.DrawString(string(r))
}

func drawBitmapGlyph(img *image.NRGBA, cellX, cellY int, rows []string) {
	w := color.NRGBA{255, 255, 255, 255}
	for dy, row := range rows {
		for dx, ch := range row {
			if ch == '#' {
				img.SetNRGBA(cellX+dx, cellY+4+dy, w)
			}
		}
	}
}

// GlyphFor maps a rune to an atlas code. Unknown runes render as '?'.
func GlyphFor(r rune) byte {
	switch {
	case r >= 32 && r <= 126:
		return byte(r)
	case r == '♥' || r == '❤' || r == '💖' || r == '💝' || r == '💌':
		return GlyphHeart
	case r == '✨' || r == '★' || r == '✦':
		return GlyphSparkle
	default:
		return '?'
	}
}
