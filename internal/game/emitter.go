package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/iburimskiy/bokeh/internal/config"
)

// Clock reports the current time. Tests replace the wall clock with a
// manually advanced one.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// EmitterOption customises an Emitter.
type EmitterOption func(*Emitter)

// WithClock sets the time source used to measure frame deltas.
func WithClock(c Clock) EmitterOption {
	return func(e *Emitter) { e.clock = c }
}

// WithRand sets the random source used to place and tune new particles.
func WithRand(r *rand.Rand) EmitterOption {
	return func(e *Emitter) { e.rng = r }
}

// Emitter spawns particles at a steady rate, ages them, removes the dead
// ones and draws the rest.
type Emitter struct {
	// X and Y are the emitter's own position. New particles are scattered
	// over the whole canvas rather than spawned here.
	X, Y float64

	settings      config.Settings
	width, height int
	delay         float64 // ms between emissions

	clock      Clock
	rng        *rand.Rand
	anchored   bool
	lastUpdate time.Time
	pending    float64 // ms accumulated since the last emission

	particles []Particle
}

// NewEmitter validates settings and returns an emitter spawning over a
// width x height canvas.
func NewEmitter(x, y float64, settings config.Settings, width, height int, opts ...EmitterOption) (*Emitter, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("emitter: canvas size %dx%d must be positive", width, height)
	}

	e := &Emitter{
		X:        x,
		Y:        y,
		settings: settings,
		width:    width,
		height:   height,
		delay:    settings.EmissionDelay(),
		clock:    wallClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e, nil
}

// Anchor records the current time as the reference for the next Update.
func (e *Emitter) Anchor() {
	e.lastUpdate = e.clock.Now()
	e.anchored = true
}

// Anchored reports whether Anchor has been called since creation or the last Reset.
func (e *Emitter) Anchored() bool { return e.anchored }

// Update advances the simulation by the time elapsed since the previous
// call and draws the live particles on dst, which may be nil. The first
// call after creation or Reset only anchors the clock. It returns the
// number of particles spawned.
func (e *Emitter) Update(dst Canvas) int {
	if !e.anchored {
		e.Anchor()
		return 0
	}

	now := e.clock.Now()
	dt := float64(now.Sub(e.lastUpdate)) / float64(time.Millisecond)
	e.lastUpdate = now
	e.pending += dt

	spawned := 0
	if e.pending >= e.delay {
		spawned = int(math.Floor(e.pending / e.delay))
		e.pending -= float64(spawned) * e.delay
		// floor can land one short when delay is not exactly representable
		if e.pending >= e.delay {
			spawned++
			e.pending -= e.delay
		}
		if e.pending < 0 {
			e.pending = 0
		}
		for range spawned {
			e.particles = append(e.particles, e.spawn())
		}
	}

	secs := dt / 1000
	if dst != nil {
		dst.SetComposite(CompositeLighter)
	}

	for i := len(e.particles) - 1; i >= 0; i-- {
		p := &e.particles[i]
		if p.Dead {
			e.particles = slices.Delete(e.particles, i, i+1)
			continue
		}

		p.Lived += secs
		if p.Lived >= p.Life {
			p.Dead = true
			continue
		}

		p.X += p.VX * secs
		p.Y += p.VY * secs

		if dst != nil {
			dst.FillCircle(p.X, p.Y, p.Size, premultiply(e.settings.Color, fadeAlpha(p.Lived, p.Life)))
		}
	}
	return spawned
}

func (e *Emitter) spawn() Particle {
	s := e.settings
	return NewParticle(
		math.Floor(e.rng.Float64()*float64(e.width))+1,
		math.Floor(e.rng.Float64()*float64(e.height))+1,
		s.MinAngle+e.rng.Float64()*s.AngleRange,
		s.MinSpeed+e.rng.Float64()*s.SpeedRange,
		s.MinLife+e.rng.Float64()*s.LifeRange,
		s.MinSize+e.rng.Float64()*s.SizeRange,
	)
}

// Particles returns a copy of the current particle collection, including
// particles flagged dead that have not been removed yet.
func (e *Emitter) Particles() []Particle { return slices.Clone(e.particles) }

func (e *Emitter) Len() int { return len(e.particles) }

// Pending returns the milliseconds accumulated towards the next emission.
func (e *Emitter) Pending() float64 { return e.pending }

// EmissionDelay returns the milliseconds between two emissions.
func (e *Emitter) EmissionDelay() float64 { return e.delay }

// Reset drops every particle and forgets the time anchor.
func (e *Emitter) Reset() {
	e.particles = e.particles[:0]
	e.pending = 0
	e.anchored = false
	e.lastUpdate = time.Time{}
}
