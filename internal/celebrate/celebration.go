// Package celebrate holds the effects that play once the proposal is
// accepted: a confetti burst, a chime and the photo slideshow.
package celebrate

import "time"

// Celebration fires the confetti and the chime together. It satisfies
// game.Celebrator.
type Celebration struct {
	Confetti *Confetti
	Chime    *Chime // nil for silent
	Clock    func() time.Time
}

// Celebrate starts a burst and plays the chime.
func (c *Celebration) Celebrate() {
	c.Confetti.Burst(c.Clock())
	c.Chime.Play()
}
