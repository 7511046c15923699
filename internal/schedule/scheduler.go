// Package schedule runs repeating tasks off the frame loop.
//
// Nothing here spawns goroutines: the owner calls Advance once per frame with
// the current time and due tasks run inline, on the same thread that handles
// input. That keeps task callbacks free to touch UI state without locking.
package schedule

import "time"

// Task is a repeating callback registered with a Scheduler.
type Task struct {
	interval  time.Duration
	next      time.Time
	end       time.Time // zero: runs until cancelled
	fn        func(now time.Time)
	cancelled bool
}

// Cancel stops the task. Safe to call more than once, including from inside
// the task's own callback.
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Active reports whether the task may still fire.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled
}

// Scheduler holds repeating tasks.
type Scheduler struct {
	tasks []*Task
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Every runs fn each interval, starting one interval after now. A non-zero
// span stops the task once now+span is reached.
func (s *Scheduler) Every(now time.Time, interval, span time.Duration, fn func(now time.Time)) *Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &Task{
		interval: interval,
		next:     now.Add(interval),
		fn:       fn,
	}
	if span > 0 {
		t.end = now.Add(span)
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance fires every due task once, in registration order, and drops tasks
// that are cancelled or past their span. A task that fell several intervals
// behind fires once and resumes from now.
func (s *Scheduler) Advance(now time.Time) {
	// Tasks registered by callbacks wait for the next Advance.
	pending := s.tasks
	for _, t := range pending {
		if t.cancelled {
			continue
		}
		if !t.end.IsZero() && !now.Before(t.end) {
			t.cancelled = true
			continue
		}
		if now.Before(t.next) {
			continue
		}
		t.fn(now)
		t.next = t.next.Add(t.interval)
		if !t.next.After(now) {
			t.next = now.Add(t.interval)
		}
	}

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
