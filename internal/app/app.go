// Package app wires the proposal controller to its collaborators. Both
// frontends build one App and drive it from their frame loop.
package app

import (
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/bemine/bemine/assets"
	"github.com/bemine/bemine/internal/celebrate"
	"github.com/bemine/bemine/internal/config"
	"github.com/bemine/bemine/internal/content"
	"github.com/bemine/bemine/internal/game"
	"github.com/bemine/bemine/internal/notify"
	"github.com/bemine/bemine/internal/schedule"
)

// App holds every long-lived piece of one proposal session.
type App struct {
	Config     config.Config
	Script     *content.Script
	Photos     []content.Photo
	Controller *game.Controller
	Confetti   *celebrate.Confetti
	Slideshow  *celebrate.Slideshow
	Chime      *celebrate.Chime // nil when audio is off or unavailable

	sched      *schedule.Scheduler
	dispatcher *notify.Dispatcher
	clock      func() time.Time
}

// New builds an App from cfg. Photos are scaled to fit frame. clock may be
// nil, in which case time.Now is used.
func New(cfg config.Config, frame image.Point, clock func() time.Time) (*App, error) {
	if clock == nil {
		clock = time.Now
	}

	data, err := assets.Text.ReadFile("text/script.json")
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	script, err := content.LoadScript(data)
	if err != nil {
		return nil, err
	}

	sender, err := notify.NewSender(cfg.Notify.Backend, notify.EmailJS{
		Endpoint:   cfg.Notify.EmailJSEndpoint,
		ServiceID:  cfg.Notify.EmailJSServiceID,
		TemplateID: cfg.Notify.EmailJSTemplateID,
		PublicKey:  cfg.Notify.EmailJSPublicKey,
	})
	if err != nil {
		return nil, err
	}
	dispatcher := notify.NewDispatcher(sender, notify.Notice{
		ToName:   cfg.Notify.ToName,
		FromName: cfg.Notify.FromName,
		Message:  cfg.Notify.Message,
	}, cfg.Notify.Timeout)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(clock().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	a := &App{
		Config:     cfg,
		Script:     script,
		Photos:     content.PhotosOrPlaceholders(cfg.PhotoDir, frame),
		sched:      schedule.New(),
		dispatcher: dispatcher,
		clock:      clock,
	}

	if cfg.Audio.Enabled {
		chime := celebrate.NewChime(cfg.Audio.Volume)
		if err := chime.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			a.Chime = chime
		}
	}

	a.Confetti = celebrate.NewConfetti(a.sched, rng)
	a.Slideshow = celebrate.NewSlideshow(a.sched, len(a.Photos), clock)
	a.Controller = game.NewController(rng, &celebrate.Celebration{
		Confetti: a.Confetti,
		Chime:    a.Chime,
		Clock:    clock,
	}, dispatcher)
	a.Controller.Observe(a.Slideshow.PhaseChanged)

	log.Printf("session ready: %d photos, notify=%s, audio=%v",
		len(a.Photos), cfg.Notify.Backend, a.Chime != nil)
	return a, nil
}

// Resize forwards a viewport change to everything that cares about it.
func (a *App) Resize(width, height float64) {
	a.Controller.OnViewportChange(width, height)
	a.Confetti.Resize(width, height)
}

// Tick runs due timers and advances the confetti by one frame.
func (a *App) Tick() {
	a.sched.Advance(a.clock())
	a.Confetti.Step()
}

// Now returns the App's clock reading.
func (a *App) Now() time.Time {
	return a.clock()
}

// Photo returns the slide currently on show.
func (a *App) Photo() content.Photo {
	return a.Photos[a.Slideshow.Index()]
}

// Close stops timers, waits for any in-flight notification and releases
// the speaker.
func (a *App) Close() {
	a.Confetti.Stop()
	a.Slideshow.Stop()
	a.dispatcher.Wait()
	a.Chime.Close()
}
