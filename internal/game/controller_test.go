package game

import (
	"math"
	"math/rand/v2"
	"testing"
)

type countingCelebrator struct{ n int }

func (c *countingCelebrator) Celebrate() { c.n++ }

type countingNotifier struct{ n int }

func (n *countingNotifier) NotifyAccepted() { n.n++ }

func newTestController() (*Controller, *countingCelebrator, *countingNotifier) {
	cel := &countingCelebrator{}
	note := &countingNotifier{}
	c := NewController(rand.New(rand.NewPCG(7, 11)), cel, note)
	c.OnViewportChange(1024, 768)
	return c, cel, note
}

func TestEvasionThreshold(t *testing.T) {
	c, _, _ := newTestController()

	for i := 1; i < EvasionLimit; i++ {
		c.OnEvasiveEncounter()
		s := c.Snapshot()
		if s.EvasionCount != i {
			t.Fatalf("after %d encounters count=%d", i, s.EvasionCount)
		}
		if s.Phase != PhaseChasing {
			t.Fatalf("phase changed early at encounter %d: %s", i, s.Phase)
		}
		if s.EvadingOffset.Y > 0 {
			t.Fatalf("encounter %d moved the button down: %+v", i, s.EvadingOffset)
		}
	}

	c.OnEvasiveEncounter()
	s := c.Snapshot()
	if s.Phase != PhasePersuading {
		t.Fatalf("phase = %s, want PERSUADING", s.Phase)
	}
	if s.EvasionCount != EvasionLimit {
		t.Errorf("evasion count = %d, want %d", s.EvasionCount, EvasionLimit)
	}
	if s.EvadingOffset != (Offset{}) {
		t.Errorf("offset = %+v, want origin", s.EvadingOffset)
	}

	// No longer chasing: further encounters are ignored.
	c.OnEvasiveEncounter()
	if got := c.Snapshot().EvasionCount; got != EvasionLimit {
		t.Errorf("encounter outside chasing changed count to %d", got)
	}
}

func TestPersuasion(t *testing.T) {
	c, _, _ := newTestController()

	// Rejection clicks are ignored while chasing.
	c.OnRejectionClick()
	if got := c.Snapshot().PersuasionCount; got != 0 {
		t.Fatalf("click while chasing counted: %d", got)
	}

	for i := 0; i < EvasionLimit; i++ {
		c.OnEvasiveEncounter()
	}

	if got := c.Snapshot().Caption(); got != "No" {
		t.Errorf("initial caption = %q, want No", got)
	}

	prevScale := c.Snapshot().Scale()
	for n := 1; n <= 40; n++ {
		c.OnRejectionClick()
		s := c.Snapshot()
		if s.PersuasionCount != n {
			t.Fatalf("count = %d, want %d", s.PersuasionCount, n)
		}
		wantScale := 1 + 0.2*float64(n)
		if math.Abs(s.Scale()-wantScale) > 1e-9 {
			t.Errorf("scale at %d = %v, want %v", n, s.Scale(), wantScale)
		}
		if s.Scale() <= prevScale {
			t.Errorf("scale did not grow at %d", n)
		}
		prevScale = s.Scale()

		wantIdx := min(n, 15)
		if s.Caption() != Captions()[wantIdx] {
			t.Errorf("caption at %d = %q, want %q", n, s.Caption(), Captions()[wantIdx])
		}
	}
	if got := c.Snapshot().Caption(); got != "Pretty please!!!" {
		t.Errorf("final caption = %q", got)
	}
}

func TestCaptionTable(t *testing.T) {
	caps := Captions()
	if len(caps) != 16 {
		t.Fatalf("len = %d, want 16", len(caps))
	}
	if caps[0] != "No" || caps[1] != "Are you sure?" || caps[15] != "Pretty please!!!" {
		t.Errorf("unexpected table ends: %q %q %q", caps[0], caps[1], caps[15])
	}

	caps[0] = "mutated"
	if Caption(0) != "No" {
		t.Error("Captions() leaked the backing table")
	}

	tests := []struct{ in, want int }{
		{-3, 0}, {0, 0}, {7, 7}, {15, 15}, {16, 15}, {1000, 15},
	}
	for _, tt := range tests {
		if got := CaptionIndex(tt.in); got != tt.want {
			t.Errorf("CaptionIndex(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAffirmativeFromEitherPhase(t *testing.T) {
	t.Run("from chasing", func(t *testing.T) {
		c, cel, note := newTestController()
		c.OnEvasiveEncounter()
		c.OnAffirmativeClick()
		s := c.Snapshot()
		if s.Phase != PhaseAccepted {
			t.Fatalf("phase = %s", s.Phase)
		}
		if s.EvadingOffset != (Offset{}) {
			t.Errorf("offset not reset: %+v", s.EvadingOffset)
		}
		if cel.n != 1 || note.n != 1 {
			t.Errorf("celebrate=%d notify=%d, want 1 each", cel.n, note.n)
		}
	})

	t.Run("from persuading", func(t *testing.T) {
		c, cel, note := newTestController()
		for i := 0; i < EvasionLimit; i++ {
			c.OnEvasiveEncounter()
		}
		c.OnRejectionClick()
		c.OnAffirmativeClick()
		if got := c.Phase(); got != PhaseAccepted {
			t.Fatalf("phase = %s", got)
		}

		// A second Yes does not fire the collaborators again.
		c.OnAffirmativeClick()
		if cel.n != 1 || note.n != 1 {
			t.Errorf("celebrate=%d notify=%d, want 1 each", cel.n, note.n)
		}
	})
}

func TestNilCollaborators(t *testing.T) {
	c := NewController(rand.New(rand.NewPCG(1, 1)), nil, nil)
	c.OnAffirmativeClick()
	if c.Phase() != PhaseAccepted {
		t.Fatalf("phase = %s", c.Phase())
	}
}

func TestEndToEnd(t *testing.T) {
	c, _, _ := newTestController()

	var transitions []Phase
	c.Observe(func(from, to Phase) {
		if to <= from {
			t.Errorf("backwards transition %s -> %s", from, to)
		}
		transitions = append(transitions, to)
	})

	for i := 0; i < EvasionLimit; i++ {
		c.OnEvasiveEncounter()
	}
	s := c.Snapshot()
	if s.Phase != PhasePersuading || s.EvasionCount != 10 || s.EvadingOffset != (Offset{}) {
		t.Fatalf("after chase: %+v", s)
	}

	c.OnContinue() // not yet valid
	if c.Phase() != PhasePersuading {
		t.Fatalf("continue leaked through: %s", c.Phase())
	}

	c.OnAffirmativeClick()
	if c.Phase() != PhaseAccepted {
		t.Fatalf("phase = %s, want ACCEPTED", c.Phase())
	}

	c.OnContinue()
	final := c.Snapshot()
	if final.Phase != PhaseExpandedMessage {
		t.Fatalf("phase = %s, want EXPANDED_MESSAGE", final.Phase)
	}

	// Nothing moves the session on from here.
	c.OnContinue()
	c.OnContinue()
	c.OnAffirmativeClick()
	c.OnRejectionClick()
	c.OnEvasiveEncounter()
	if got := c.Snapshot(); got != final {
		t.Errorf("terminal state changed: %+v -> %+v", final, got)
	}

	want := []Phase{PhasePersuading, PhaseAccepted, PhaseExpandedMessage}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d = %s, want %s", i, transitions[i], want[i])
		}
	}
}

func TestViewportChangeAnyPhase(t *testing.T) {
	c, _, _ := newTestController()
	c.OnAffirmativeClick()
	c.OnContinue()
	c.OnViewportChange(400, 900)
	s := c.Snapshot()
	if s.ViewportWidth != 400 || s.ViewportHeight != 900 {
		t.Errorf("viewport = %vx%v", s.ViewportWidth, s.ViewportHeight)
	}
	if !s.Compact() {
		t.Error("400 wide should be compact")
	}
	if s.Phase != PhaseExpandedMessage {
		t.Errorf("viewport change moved phase to %s", s.Phase)
	}
}

func TestCompactViewportUsesCompactRange(t *testing.T) {
	c := NewController(&seqRand{vals: []float64{1, 1}}, nil, nil)
	c.OnViewportChange(400, 800)
	c.OnEvasiveEncounter()
	// compact: xHalf = 140, yRange = 320
	got := c.Snapshot().EvadingOffset
	if got.X != 140 || got.Y != -320 {
		t.Errorf("offset = %+v, want {140 -320}", got)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseExpandedMessage.String() != "EXPANDED_MESSAGE" {
		t.Errorf("got %q", PhaseExpandedMessage.String())
	}
	if Phase(99).String() != "UNKNOWN" {
		t.Errorf("got %q", Phase(99).String())
	}
}
