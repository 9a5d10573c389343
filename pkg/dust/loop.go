package dust

import "time"

// FrameLoop repeats "run step, then request the next frame" on a Scheduler.
// At most one frame request is outstanding at any time.
type FrameLoop struct {
	sched   Scheduler
	step    func(now time.Duration)
	handle  FrameHandle
	pending bool
	running bool
	gen     uint64
}

// NewFrameLoop binds step to sched. The loop is idle until Start.
func NewFrameLoop(sched Scheduler, step func(now time.Duration)) *FrameLoop {
	return &FrameLoop{sched: sched, step: step}
}

// Start requests the first frame. Starting a running loop is a no-op.
func (l *FrameLoop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.request()
}

// Stop cancels the pending frame. A callback that still fires afterwards
// returns without running the step.
func (l *FrameLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.gen++
	if l.pending {
		l.sched.CancelFrame(l.handle)
		l.pending = false
	}
}

// Running reports whether the loop will keep requesting frames.
func (l *FrameLoop) Running() bool { return l.running }

func (l *FrameLoop) request() {
	gen := l.gen
	l.handle = l.sched.RequestFrame(func(now time.Duration) { l.tick(gen, now) })
	l.pending = true
}

func (l *FrameLoop) tick(gen uint64, now time.Duration) {
	// Requests from before a Stop belong to an earlier run.
	if gen != l.gen || !l.running {
		return
	}
	l.pending = false
	l.step(now)
	// The step may have stopped the loop.
	if !l.running {
		return
	}
	l.request()
}
