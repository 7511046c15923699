package game

import "log"

const (
	// EvasionLimit is how many times the No button dodges before it gives up.
	EvasionLimit = 10

	scaleStep = 0.2
)

// Celebrator fires the one-shot celebration effect.
type Celebrator interface {
	Celebrate()
}

// Notifier sends the acceptance notification. It must not block.
type Notifier interface {
	NotifyAccepted()
}

// Session is the whole proposal state. It lives as long as the view does.
type Session struct {
	Phase           Phase
	EvasionCount    int
	PersuasionCount int
	EvadingOffset   Offset // only meaningful while chasing

	ViewportWidth  float64
	ViewportHeight float64
}

// Scale is the growth factor of the Yes button.
func (s Session) Scale() float64 {
	return 1 + scaleStep*float64(s.PersuasionCount)
}

// Caption is the current No-button label.
func (s Session) Caption() string {
	return Caption(s.PersuasionCount)
}

// Compact reports whether the current viewport uses the compact layout.
func (s Session) Compact() bool {
	return IsCompact(s.ViewportWidth)
}

// Controller owns the Session and is the only thing that mutates it.
// Events that arrive in the wrong phase are ignored.
type Controller struct {
	session    Session
	rng        Rand
	celebrator Celebrator
	notifier   Notifier
	observers  []func(from, to Phase)
}

// NewController starts a session in the chasing phase. celebrator and
// notifier may be nil.
func NewController(rng Rand, celebrator Celebrator, notifier Notifier) *Controller {
	return &Controller{
		session:    Session{Phase: PhaseChasing},
		rng:        rng,
		celebrator: celebrator,
		notifier:   notifier,
	}
}

// Observe registers fn to run after every phase transition.
func (c *Controller) Observe(fn func(from, to Phase)) {
	c.observers = append(c.observers, fn)
}

// Snapshot returns a copy of the session.
func (c *Controller) Snapshot() Session {
	return c.session
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.session.Phase
}

// OnEvasiveEncounter handles the pointer reaching the No button while it is
// still running away.
func (c *Controller) OnEvasiveEncounter() {
	s := &c.session
	if s.Phase != PhaseChasing {
		return
	}
	s.EvasionCount++
	if s.EvasionCount >= EvasionLimit {
		s.EvadingOffset = Offset{}
		c.transition(PhasePersuading)
		return
	}
	s.EvadingOffset = ComputeOffset(c.rng, s.ViewportWidth, s.ViewportHeight, s.Compact())
}

// OnRejectionClick handles a click on the No button once it stopped moving.
func (c *Controller) OnRejectionClick() {
	if c.session.Phase != PhasePersuading {
		return
	}
	c.session.PersuasionCount++
}

// OnAffirmativeClick handles a click on the Yes button.
func (c *Controller) OnAffirmativeClick() {
	switch c.session.Phase {
	case PhaseChasing, PhasePersuading:
	default:
		return
	}
	c.session.EvadingOffset = Offset{}
	c.transition(PhaseAccepted)

	if c.celebrator != nil {
		c.celebrator.Celebrate()
	}
	if c.notifier != nil {
		c.notifier.NotifyAccepted()
	}
}

// OnContinue moves from the celebration to the closing letter.
func (c *Controller) OnContinue() {
	if c.session.Phase != PhaseAccepted {
		return
	}
	c.transition(PhaseExpandedMessage)
}

// OnViewportChange records the display size. It never affects the phase.
func (c *Controller) OnViewportChange(width, height float64) {
	c.session.ViewportWidth = width
	c.session.ViewportHeight = height
}

func (c *Controller) transition(to Phase) {
	from := c.session.Phase
	c.session.Phase = to
	log.Printf("phase %s -> %s (evasions=%d, persuasions=%d)",
		from, to, c.session.EvasionCount, c.session.PersuasionCount)
	for _, fn := range c.observers {
		fn(from, to)
	}
}
