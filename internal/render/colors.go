package render

import "image/color"

// Palette indices.
const (
	ColorBlush   = 0 // page background
	ColorCard    = 1 // card background
	ColorRose    = 2 // Yes button
	ColorRoseHi  = 3 // Yes button hovered
	ColorCrimson = 4 // accents, closing line
	ColorInk     = 5 // body text
	ColorMuted   = 6 // secondary text
	ColorNo      = 7 // No button
	ColorNoHi    = 8 // No button hovered
	ColorWhite   = 9
	ColorShadow  = 10
	ColorPink    = 11 // floating hearts
	ColorGold    = 12 // sparkles
)

// Palette maps indices to colors.
var Palette = [...]color.RGBA{
	{255, 228, 236, 255}, // 0: Blush
	{255, 255, 255, 242}, // 1: Card
	{255, 77, 109, 255},  // 2: Rose
	{255, 51, 85, 255},   // 3: Rose hover
	{217, 4, 41, 255},    // 4: Crimson
	{74, 74, 74, 255},    // 5: Ink
	{140, 120, 128, 255}, // 6: Muted
	{201, 173, 181, 255}, // 7: No
	{184, 150, 160, 255}, // 8: No hover
	{255, 255, 255, 255}, // 9: White
	{0, 0, 0, 38},        // 10: Shadow
	{255, 143, 171, 255}, // 11: Pink
	{255, 209, 102, 255}, // 12: Gold
}
