package celebrate

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// chimeNotes is a rising E major arpeggio.
var chimeNotes = []note{
	{659.25, 120 * time.Millisecond},
	{830.61, 120 * time.Millisecond},
	{987.77, 260 * time.Millisecond},
}

// Chime plays a short celebratory jingle through the system speaker.
type Chime struct {
	volume float64
	notes  []note
	ready  bool
}

// NewChime returns a chime at the given volume (0..1). It stays silent until
// Init succeeds.
func NewChime(volume float64) *Chime {
	return &Chime{volume: volume, notes: chimeNotes}
}

// Init opens the speaker.
func (c *Chime) Init() error {
	if c.ready {
		return nil
	}
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	c.ready = true
	return nil
}

// Play queues the jingle. It is a no-op when the speaker is not open.
func (c *Chime) Play() {
	if c == nil || !c.ready {
		return
	}
	s, err := c.Streamer()
	if err != nil {
		log.Printf("chime: %v", err)
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c != nil && c.ready {
		speaker.Close()
		c.ready = false
	}
}

// Streamer builds the jingle.
func (c *Chime) Streamer() (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(c.notes))
	for _, n := range c.notes {
		tone, err := generators.SineTone(chimeRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.freq, err)
		}
		parts = append(parts, fade(beep.Take(chimeRate.N(n.dur), tone), chimeRate.N(n.dur)))
	}
	return volume(beep.Seq(parts...), c.volume), nil
}

// Samples returns the jingle length in samples.
func (c *Chime) Samples() int {
	total := 0
	for _, n := range c.notes {
		total += chimeRate.N(n.dur)
	}
	return total
}

// fade applies a linear release over the note so it doesn't click.
func fade(s beep.Streamer, length int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := 1 - float64(pos)/float64(length)
			if g < 0 {
				g = 0
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// volume maps a linear 0..1 gain onto beep's log volume.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
