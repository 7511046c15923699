// Package pointer turns raw pointer input into proposal events.
//
// Both frontends describe each frame (or each terminal mouse event) as a
// Frame and hand it to a Tracker together with the current button Layout.
// The Tracker decides which controller events that input means.
package pointer

import "github.com/bemine/bemine/internal/game"

// Point is a pointer position in frontend units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned hit box.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) is inside r. Edges are inclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Hover tracks whether a pointer is over something across frames.
type Hover struct {
	inside bool
}

// Update records the pointer state for this frame and reports whether the
// pointer just entered.
func (h *Hover) Update(inside bool) (entered bool) {
	entered = inside && !h.inside
	h.inside = inside
	return entered
}

// Inside reports the last recorded state.
func (h *Hover) Inside() bool { return h.inside }

// Target names a control.
type Target uint8

const (
	None Target = iota
	Yes
	No
	More
)

// Layout is where the controls are for the current phase.
type Layout struct {
	Phase   game.Phase
	Yes, No Rect
	More    Rect
}

// Hit returns the control under p. No is drawn on top of Yes, so it wins
// where the two overlap. Controls not shown in the phase are never hit.
func (l Layout) Hit(p Point) Target {
	switch l.Phase {
	case game.PhaseChasing, game.PhasePersuading:
		switch {
		case l.No.ContainsPoint(p):
			return No
		case l.Yes.ContainsPoint(p):
			return Yes
		}
	case game.PhaseAccepted:
		if l.More.ContainsPoint(p) {
			return More
		}
	}
	return None
}

// Frame is the pointer input observed since the last update.
type Frame struct {
	Cursor  Point   // mouse position
	Touches []Point // touches that began
	Down    bool    // a press began at Press
	Press   Point
	Up      bool // a press ended at Release
	Release Point
}

// Actions are the controller events one Frame produced.
type Actions struct {
	Encounters int
	Click      Target
}

// Apply delivers the actions to c.
func (a Actions) Apply(c *game.Controller) {
	for range a.Encounters {
		c.OnEvasiveEncounter()
	}
	switch a.Click {
	case No:
		c.OnRejectionClick()
	case Yes:
		c.OnAffirmativeClick()
	case More:
		c.OnContinue()
	}
}

// Tracker holds the pointer state that spans frames.
type Tracker struct {
	hover   Hover
	pressed Target
}

// Update resolves f against l. A click needs the press and the release on
// the same control; the cursor entering No or a touch starting on it is an
// evasive encounter.
func (t *Tracker) Update(l Layout, f Frame) Actions {
	var a Actions

	switch l.Phase {
	case game.PhaseChasing, game.PhasePersuading:
		if t.hover.Update(l.No.ContainsPoint(f.Cursor)) {
			a.Encounters++
		}
		for _, p := range f.Touches {
			if l.No.ContainsPoint(p) {
				a.Encounters++
			}
		}
	default:
		t.hover.Update(false)
	}

	if f.Down {
		t.pressed = l.Hit(f.Press)
	}
	if f.Up {
		if hit := l.Hit(f.Release); hit != None && hit == t.pressed {
			a.Click = hit
		}
		t.pressed = None
	}
	return a
}

// HoveringNo reports whether the cursor is over the No control.
func (t *Tracker) HoveringNo() bool {
	return t.hover.Inside()
}
