package celebrate

import (
	"time"

	"github.com/bemine/bemine/internal/game"
	"github.com/bemine/bemine/internal/schedule"
)

// SlideInterval is how long each photo stays up.
const SlideInterval = 3 * time.Second

// Slideshow cycles through a fixed number of photos while the proposal is
// accepted. Its timer lives exactly as long as the accepted phase.
type Slideshow struct {
	sched   *schedule.Scheduler
	clock   func() time.Time
	count   int
	index   int
	changed time.Time
	task    *schedule.Task
}

// NewSlideshow returns a stopped slideshow over count photos.
func NewSlideshow(sched *schedule.Scheduler, count int, clock func() time.Time) *Slideshow {
	return &Slideshow{sched: sched, clock: clock, count: count}
}

// Start shows the first photo and begins cycling. Starting a running
// slideshow restarts it.
func (s *Slideshow) Start() {
	s.Stop()
	now := s.clock()
	s.index = 0
	s.changed = now
	if s.count < 2 {
		return
	}
	s.task = s.sched.Every(now, SlideInterval, 0, func(at time.Time) {
		s.index = (s.index + 1) % s.count
		s.changed = at
	})
}

// Stop cancels the cycling timer. The current index is kept.
func (s *Slideshow) Stop() {
	s.task.Cancel()
	s.task = nil
}

// Running reports whether the slideshow timer is live.
func (s *Slideshow) Running() bool {
	return s.task.Active()
}

// Index returns the photo currently shown.
func (s *Slideshow) Index() int {
	return s.index
}

// Count returns the number of photos.
func (s *Slideshow) Count() int {
	return s.count
}

// Since returns how long the current photo has been up, for transitions.
func (s *Slideshow) Since(now time.Time) time.Duration {
	return now.Sub(s.changed)
}

// PhaseChanged binds the slideshow to the accepted phase. Register it with
// game.Controller.Observe.
func (s *Slideshow) PhaseChanged(from, to game.Phase) {
	switch {
	case to == game.PhaseAccepted:
		s.Start()
	case from == game.PhaseAccepted:
		s.Stop()
	}
}
