// Package dust animates a bounded field of drifting gold dust particles over
// a host drawing surface.
package dust

import (
	"errors"
	"math"
	"time"

	"golden-frame/pkg/core"
)

// ErrNoSurface is returned by Activate when the host has no surface.
var ErrNoSurface = errors.New("dust: host surface missing")

// Animator drives a Field over a host surface. It is created by Activate
// and must only be used from the host's frame thread.
type Animator struct {
	host  Host
	field *Field
	loop  *FrameLoop

	resizeID   int
	subscribed bool
	dpr        float64
	scaled     bool
	last       time.Duration
	active     bool
}

// Activate sizes the surface for the current pixel ratio, seeds half the
// field and starts the frame loop. Nothing is scheduled or subscribed when
// the host has no surface.
func Activate(host Host, cfg Config) (*Animator, error) {
	if host.Surface == nil {
		return nil, ErrNoSurface
	}
	if host.Scheduler == nil {
		return nil, errors.New("dust: host scheduler missing")
	}
	cfg = cfg.normalized()

	a := &Animator{
		host:   host,
		field:  NewField(cfg.Capacity, core.NewRNG(cfg.Seed)),
		active: true,
	}
	a.Resize()

	w, h := host.Surface.ClientSize()
	a.field.Seed(w, h)

	if host.Resize != nil {
		a.resizeID = host.Resize.Subscribe(a.Resize)
		a.subscribed = true
	}
	a.last = host.Scheduler.Now()
	a.loop = NewFrameLoop(host.Scheduler, a.frame)
	a.loop.Start()
	return a, nil
}

// Resize recomputes the pixel ratio and reapplies the buffer size and scale.
// Particles are left untouched.
func (a *Animator) Resize() {
	if !a.active {
		return
	}
	a.dpr = a.host.pixelRatio()
	w, h := a.host.Surface.ClientSize()
	a.host.Surface.SetBufferSize(int(math.Floor(w*a.dpr)), int(math.Floor(h*a.dpr)))
	a.scaled = false
	if ctx := a.host.Surface.Context(); ctx != nil {
		ctx.SetScale(a.dpr)
		a.scaled = true
	}
}

// Deactivate cancels the pending frame, detaches the resize listener and
// drops the field. It is safe to call more than once.
func (a *Animator) Deactivate() {
	if !a.active {
		return
	}
	a.active = false
	a.loop.Stop()
	if a.subscribed {
		a.host.Resize.Unsubscribe(a.resizeID)
		a.subscribed = false
	}
	a.field = nil
}

// Active reports whether the animator has not been torn down.
func (a *Animator) Active() bool { return a.active }

// PixelRatio returns the pixel ratio applied by the last resize.
func (a *Animator) PixelRatio() float64 { return a.dpr }

// Field returns the live field, or nil after Deactivate.
func (a *Animator) Field() *Field { return a.field }

// Stats returns the field counters. It is zero after Deactivate.
func (a *Animator) Stats() FieldStats {
	if a.field == nil {
		return FieldStats{}
	}
	return a.field.Stats()
}

func (a *Animator) frame(now time.Duration) {
	if !a.active || a.field == nil {
		return
	}
	delta := float64(now-a.last) / float64(time.Millisecond)
	a.last = now

	ctx := a.host.Surface.Context()
	if ctx == nil {
		a.field.skip()
		return
	}
	// A context that appeared after the last resize has not been scaled yet.
	if !a.scaled {
		ctx.SetScale(a.dpr)
		a.scaled = true
	}
	w, h := a.host.Surface.ClientSize()
	a.field.Step(ctx, delta, w, h)
}
