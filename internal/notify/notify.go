// Package notify sends the one-shot "she said yes" notice.
//
// Delivery is best effort. The Dispatcher runs the send on its own goroutine
// and only logs the outcome; callers never wait on it and a failure never
// reaches the screen.
package notify

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// ErrNotConfigured is returned by senders missing credentials.
var ErrNotConfigured = errors.New("notify: sender not configured")

// Notice is the notification payload.
type Notice struct {
	ToName   string
	FromName string
	Message  string
}

// DefaultNotice is sent when nothing else is configured.
var DefaultNotice = Notice{
	ToName:   "My Love",
	FromName: "Valentine App",
	Message:  "She said YES! 💖",
}

// Sender delivers a Notice.
type Sender interface {
	Send(ctx context.Context, n Notice) error
}

// Dispatcher fires notices without blocking the caller.
type Dispatcher struct {
	sender  Sender
	notice  Notice
	timeout time.Duration
	done    func(Notice, error)
	wg      sync.WaitGroup
}

// NewDispatcher returns a Dispatcher that sends notice through sender. A
// zero timeout means 10 seconds.
func NewDispatcher(sender Sender, notice Notice, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		sender:  sender,
		notice:  notice,
		timeout: timeout,
		done:    logResult,
	}
}

// OnDone replaces the completion callback. The callback runs on the send
// goroutine.
func (d *Dispatcher) OnDone(fn func(Notice, error)) {
	d.done = fn
}

// NotifyAccepted sends the configured notice. It satisfies game.Notifier.
func (d *Dispatcher) NotifyAccepted() {
	d.Notify(d.notice)
}

// Notify sends n in the background.
func (d *Dispatcher) Notify(n Notice) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		err := d.sender.Send(ctx, n)
		if d.done != nil {
			d.done(n, err)
		}
	}()
}

// Wait blocks until in-flight sends finish. Used on shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func logResult(n Notice, err error) {
	if err != nil {
		log.Printf("notify %q: FAILED: %v", n.ToName, err)
		return
	}
	log.Printf("notify %q: sent", n.ToName)
}

// LogOnly writes notices to the log instead of sending them anywhere.
type LogOnly struct{}

// Send logs n.
func (LogOnly) Send(_ context.Context, n Notice) error {
	log.Printf("notice to %s from %s: %s", n.ToName, n.FromName, n.Message)
	return nil
}
