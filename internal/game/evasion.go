package game

import "math"

// Evasion tuning, in pixels.
const (
	CompactWidth = 768 // viewports narrower than this use the compact ranges

	compactXMargin = 60
	compactYMargin = 80
	fullXMargin    = 100
	fullYMargin    = 120

	nudgeZone = 60 // offsets closer than this to the origin on both axes get nudged
	nudge     = 80
)

// Rand is the random source used by the positioner.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Offset is a displacement of the No button from its resting place.
// Negative Y is up.
type Offset struct {
	X, Y float64
}

// Toward moves o the given fraction of the way to target. Frontends call it
// once per frame to glide the button instead of jumping.
func (o Offset) Toward(target Offset, rate float64) Offset {
	return Offset{
		X: o.X + (target.X-o.X)*rate,
		Y: o.Y + (target.Y-o.Y)*rate,
	}
}

// IsCompact reports whether a viewport of the given width uses the compact layout.
func IsCompact(width float64) bool {
	return width < CompactWidth
}

// EvasionRange returns the horizontal half-range and the upward range the No
// button may travel in. Ranges never go negative, so tiny viewports pin the
// button to the nudge distance.
func EvasionRange(width, height float64, compact bool) (xHalf, yRange float64) {
	if compact {
		xHalf = width/2 - compactXMargin
		yRange = height/2 - compactYMargin
	} else {
		xHalf = width/2 - fullXMargin
		yRange = height/2 - fullYMargin
	}
	return math.Max(xHalf, 0), math.Max(yRange, 0)
}

// ComputeOffset picks a new spot for the No button. X is uniform across the
// horizontal range, Y is uniform between the top of the range and the
// resting line, never below it. Spots too close to the Yes button are pushed
// outward and further up.
func ComputeOffset(rng Rand, width, height float64, compact bool) Offset {
	xHalf, yRange := EvasionRange(width, height, compact)

	x := rng.Float64()*(2*xHalf) - xHalf
	y := -(rng.Float64() * yRange)

	if math.Abs(x) < nudgeZone && math.Abs(y) < nudgeZone {
		if x < 0 {
			x -= nudge
		} else {
			x += nudge
		}
		y -= nudge
	}
	return Offset{X: x, Y: y}
}
