package game

// Handle identifies a scheduled callback.
type Handle uint64

// Scheduler runs a callback once, on the next frame.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

type scheduled struct {
	h  Handle
	fn func()
}

// FrameScheduler queues callbacks until the host's next tick. Callbacks
// scheduled while a tick is running wait for the following tick.
type FrameScheduler struct {
	next    Handle
	queue   []scheduled
	running []scheduled
}

func (s *FrameScheduler) Schedule(fn func()) Handle {
	s.next++
	s.queue = append(s.queue, scheduled{h: s.next, fn: fn})
	return s.next
}

func (s *FrameScheduler) Cancel(h Handle) {
	for i, q := range s.queue {
		if q.h == h {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
	for i := range s.running {
		if s.running[i].h == h {
			s.running[i].fn = nil
		}
	}
}

// Pending reports how many callbacks are waiting for the next tick.
func (s *FrameScheduler) Pending() int { return len(s.queue) }

// Tick runs the callbacks queued before it was called.
func (s *FrameScheduler) Tick() {
	s.running, s.queue = s.queue, nil
	for i := range s.running {
		if fn := s.running[i].fn; fn != nil {
			fn()
		}
	}
	s.running = nil
}
