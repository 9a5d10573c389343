package app

import (
	"time"

	"golden-frame/pkg/dust"
)

// Frames is a dust.Scheduler driven by the host's tick. Every Advance fires
// the callbacks that were pending when it was called.
type Frames struct {
	now     time.Duration
	next    dust.FrameHandle
	pending []frameRequest
	firing  []frameRequest
}

type frameRequest struct {
	handle dust.FrameHandle
	fn     func(now time.Duration)
}

// NewFrames returns an empty scheduler.
func NewFrames() *Frames {
	return &Frames{}
}

// Now returns the timestamp of the last Advance.
func (f *Frames) Now() time.Duration { return f.now }

// RequestFrame queues fn for the next Advance.
func (f *Frames) RequestFrame(fn func(now time.Duration)) dust.FrameHandle {
	f.next++
	f.pending = append(f.pending, frameRequest{handle: f.next, fn: fn})
	return f.next
}

// CancelFrame drops a queued request, including one from the batch that
// is currently firing.
func (f *Frames) CancelFrame(h dust.FrameHandle) {
	for i, req := range f.pending {
		if req.handle == h {
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return
		}
	}
	for i := range f.firing {
		if f.firing[i].handle == h {
			f.firing[i].fn = nil
			return
		}
	}
}

// Pending returns the number of queued requests.
func (f *Frames) Pending() int { return len(f.pending) }

// Advance moves the clock to now and runs the queued callbacks in request
// order. Requests made while firing wait for the next Advance; a request
// cancelled while firing does not run.
func (f *Frames) Advance(now time.Duration) {
	if now > f.now {
		f.now = now
	}
	f.firing = f.pending
	f.pending = nil
	for i := range f.firing {
		fn := f.firing[i].fn
		if fn == nil {
			continue
		}
		f.firing[i].fn = nil
		fn(f.now)
	}
	f.firing = nil
}
