package game

import (
	"sync"
	"time"

	"github.com/iburimskiy/bokeh/internal/config"
)

// Loop redraws the canvas once per scheduled frame: background first, then
// the emitter's particles. It keeps rescheduling itself until stopped.
type Loop struct {
	mu sync.Mutex

	canvas  Canvas
	emitter *Emitter
	sched   Scheduler

	background []ColorStop
	timing     *frameTap

	running bool
	handle  Handle
	gen     uint64 // bumped by Start; frames scheduled under an older gen are ignored

	frames    uint64
	lastFrame time.Time
}

func NewLoop(canvas Canvas, emitter *Emitter, sched Scheduler) *Loop {
	return &Loop{
		canvas:  canvas,
		emitter: emitter,
		sched:   sched,
		background: []ColorStop{
			{Offset: 0, Color: config.Background},
			{Offset: 1, Color: config.Background},
		},
		timing: newFrameTap(config.FrameRingSize),
	}
}

// Start anchors the emitter's clock and schedules the first frame. Time
// spent stopped is not simulated.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return
	}
	l.running = true
	l.emitter.Anchor()
	l.lastFrame = time.Time{}
	l.gen++
	l.schedule()
}

// Stop cancels the pending frame. Particles keep their state.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running {
		return
	}
	l.running = false
	l.sched.Cancel(l.handle)
}

// Reset drops every particle. A running loop keeps going from an empty
// field without simulating the time before the reset.
func (l *Loop) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.emitter.Reset()
	if l.running {
		l.emitter.Anchor()
	}
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Frames returns how many frames have been drawn.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// AverageFrameTime returns the mean interval between recent frames.
func (l *Loop) AverageFrameTime() time.Duration { return l.timing.average() }

func (l *Loop) schedule() {
	gen := l.gen
	l.handle = l.sched.Schedule(func() { l.frame(gen) })
}

func (l *Loop) frame(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A callback that fired before Stop could cancel it must not revive
	// the previous run alongside the current one.
	if !l.running || gen != l.gen {
		return
	}

	now := l.emitter.clock.Now()
	if !l.lastFrame.IsZero() {
		l.timing.record(now.Sub(l.lastFrame))
	}
	l.lastFrame = now

	w, _ := l.canvas.Size()
	l.canvas.Clear()
	l.canvas.SetComposite(CompositeLighten)
	l.canvas.FillRadialGradient(0, 0, 0, float64(w), l.background)

	l.emitter.Update(l.canvas)
	l.frames++

	l.schedule()
}
