package celebrate

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/bemine/bemine/internal/schedule"
	"github.com/mlange-42/ark/ecs"
)

// Burst timing and particle tuning.
const (
	BurstDuration = 3 * time.Second
	BurstInterval = 250 * time.Millisecond
	BurstPeak     = 50 // particles per origin at the start of a burst

	startVelocity = 30.0
	spreadDeg     = 360.0
	launchDeg     = 90.0
	lifeTicks     = 60
	decay         = 0.9
	gravity       = 3.0 // px per tick, gravity 1 scaled like the canvas effect
)

// confettiColors is the default party palette.
var confettiColors = []color.RGBA{
	{0x26, 0xcc, 0xff, 0xff},
	{0xa2, 0x5a, 0xfd, 0xff},
	{0xff, 0x5e, 0x7e, 0xff},
	{0x88, 0xff, 0x5a, 0xff},
	{0xfc, 0xff, 0x42, 0xff},
	{0xff, 0xa6, 0x2d, 0xff},
	{0xff, 0x36, 0xff, 0xff},
}

// Position is a particle's location in viewport pixels.
type Position struct {
	X, Y float64
}

// Motion is a particle's heading and speed.
type Motion struct {
	Angle    float64 // radians, screen coordinates (positive is down)
	Velocity float64
}

// Fetti is the visual state of one confetti piece.
type Fetti struct {
	Color       color.RGBA
	Tick        int
	TotalTicks  int
	Wobble      float64
	WobbleSpeed float64
	Tilt        float64
}

// Particle is a read-only view of a live confetti piece, for drawing.
type Particle struct {
	X, Y   float64
	Tilt   float64
	Wobble float64
	Color  color.RGBA
	Alpha  float64 // 1 at spawn, fading to 0 at end of life
}

// Confetti is a particle system that fires timed bursts from two points
// near the left and right edges of the viewport.
type Confetti struct {
	world   *ecs.World
	spawner *ecs.Map3[Position, Motion, Fetti]
	filter  *ecs.Filter3[Position, Motion, Fetti]
	sched   *schedule.Scheduler
	rng     *rand.Rand

	width, height float64
	alive         int
	bursts        []*schedule.Task
	dead          []ecs.Entity
}

// NewConfetti creates an empty particle system that schedules its bursts on
// sched.
func NewConfetti(sched *schedule.Scheduler, rng *rand.Rand) *Confetti {
	w := ecs.NewWorld(1024)
	return &Confetti{
		world:   w,
		spawner: ecs.NewMap3[Position, Motion, Fetti](w),
		filter:  ecs.NewFilter3[Position, Motion, Fetti](w),
		sched:   sched,
		rng:     rng,
	}
}

// Resize tells the system how large the viewport is.
func (c *Confetti) Resize(width, height float64) {
	c.width, c.height = width, height
}

// Burst starts a timed burst: every BurstInterval for BurstDuration, both
// origins emit a volley that shrinks as the burst runs out.
func (c *Confetti) Burst(now time.Time) {
	end := now.Add(BurstDuration)
	task := c.sched.Every(now, BurstInterval, BurstDuration, func(at time.Time) {
		left := end.Sub(at)
		if left <= 0 {
			return
		}
		n := VolleySize(left)
		c.emit(n, c.between(0.1, 0.3), c.rng.Float64()-0.2)
		c.emit(n, c.between(0.7, 0.9), c.rng.Float64()-0.2)
	})
	c.bursts = append(c.bursts, task)
}

// Stop cancels running bursts and clears every particle.
func (c *Confetti) Stop() {
	for _, t := range c.bursts {
		t.Cancel()
	}
	c.bursts = c.bursts[:0]

	c.dead = c.dead[:0]
	query := c.filter.Query()
	for query.Next() {
		c.dead = append(c.dead, query.Entity())
	}
	c.removeDead()
}

// VolleySize is the number of particles each origin emits with left time
// remaining in a burst.
func VolleySize(left time.Duration) int {
	if left <= 0 {
		return 0
	}
	if left > BurstDuration {
		left = BurstDuration
	}
	return int(BurstPeak * float64(left) / float64(BurstDuration))
}

func (c *Confetti) between(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

// emit spawns n particles at a normalized origin.
func (c *Confetti) emit(n int, ox, oy float64) {
	launch := launchDeg * math.Pi / 180
	spread := spreadDeg * math.Pi / 180
	for i := 0; i < n; i++ {
		c.spawner.NewEntity(
			&Position{X: ox * c.width, Y: oy * c.height},
			&Motion{
				Angle:    -launch + (0.5*spread - c.rng.Float64()*spread),
				Velocity: startVelocity*0.5 + c.rng.Float64()*startVelocity,
			},
			&Fetti{
				Color:       confettiColors[c.rng.IntN(len(confettiColors))],
				TotalTicks:  lifeTicks,
				Wobble:      c.rng.Float64() * 10,
				WobbleSpeed: math.Min(0.11, c.rng.Float64()*0.1+0.05),
				Tilt:        (c.rng.Float64()*(0.75-0.25) + 0.25) * math.Pi,
			},
		)
		c.alive++
	}
}

// Step advances every particle by one frame and retires expired ones.
func (c *Confetti) Step() {
	c.dead = c.dead[:0]
	query := c.filter.Query()
	for query.Next() {
		pos, mot, f := query.Get()
		pos.X += math.Cos(mot.Angle) * mot.Velocity
		pos.Y += math.Sin(mot.Angle)*mot.Velocity + gravity
		mot.Velocity *= decay
		f.Wobble += f.WobbleSpeed
		f.Tilt += 0.1
		f.Tick++
		if f.Tick >= f.TotalTicks {
			c.dead = append(c.dead, query.Entity())
		}
	}
	c.removeDead()
}

func (c *Confetti) removeDead() {
	for _, e := range c.dead {
		c.world.RemoveEntity(e)
		c.alive--
	}
	c.dead = c.dead[:0]
}

// Len returns the number of live particles.
func (c *Confetti) Len() int {
	return c.alive
}

// Each calls fn for every live particle.
func (c *Confetti) Each(fn func(p Particle)) {
	query := c.filter.Query()
	for query.Next() {
		pos, _, f := query.Get()
		fn(Particle{
			X:      pos.X,
			Y:      pos.Y,
			Tilt:   f.Tilt,
			Wobble: f.Wobble,
			Color:  f.Color,
			Alpha:  1 - float64(f.Tick)/float64(f.TotalTicks),
		})
	}
}
