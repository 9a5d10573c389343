package dust

import (
	"image/color"
	"sort"
	"time"
)

type circle struct {
	x, y, r float64
	clr     color.Color
}

type recordingContext struct {
	scale   float64
	clears  int
	circles []circle
}

func (c *recordingContext) ClearRect(x, y, w, h float64) { c.clears++ }

func (c *recordingContext) SetScale(s float64) { c.scale = s }

func (c *recordingContext) FillCircle(x, y, r float64, clr color.Color) {
	c.circles = append(c.circles, circle{x: x, y: y, r: r, clr: clr})
}

type fakeSurface struct {
	w, h    float64
	bufW    int
	bufH    int
	ctx     *recordingContext
	noCtx   bool
	resizes int
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{w: w, h: h, ctx: &recordingContext{scale: 1}}
}

func (s *fakeSurface) ClientSize() (float64, float64) { return s.w, s.h }

func (s *fakeSurface) SetBufferSize(w, h int) {
	s.bufW, s.bufH = w, h
	s.resizes++
	s.ctx.scale = 1
}

func (s *fakeSurface) Context() Context {
	if s.noCtx {
		return nil
	}
	return s.ctx
}

type manualScheduler struct {
	now     time.Duration
	next    FrameHandle
	pending map[FrameHandle]func(time.Duration)
	cancels int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: map[FrameHandle]func(time.Duration){}}
}

func (s *manualScheduler) Now() time.Duration { return s.now }

func (s *manualScheduler) RequestFrame(fn func(time.Duration)) FrameHandle {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *manualScheduler) CancelFrame(h FrameHandle) {
	if _, ok := s.pending[h]; ok {
		s.cancels++
	}
	delete(s.pending, h)
}

// take removes and returns the pending callbacks in request order without
// running them.
func (s *manualScheduler) take() []func(time.Duration) {
	handles := make([]FrameHandle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	fns := make([]func(time.Duration), 0, len(handles))
	for _, h := range handles {
		fns = append(fns, s.pending[h])
		delete(s.pending, h)
	}
	return fns
}

// fire advances the clock by dt and runs every callback pending before the
// call.
func (s *manualScheduler) fire(dt time.Duration) {
	s.now += dt
	for _, fn := range s.take() {
		fn(s.now)
	}
}

type fakeNotifier struct {
	next int
	subs map[int]func()
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{subs: map[int]func(){}}
}

func (n *fakeNotifier) Subscribe(fn func()) int {
	n.next++
	n.subs[n.next] = fn
	return n.next
}

func (n *fakeNotifier) Unsubscribe(id int) { delete(n.subs, id) }

func (n *fakeNotifier) notify() {
	for _, fn := range n.subs {
		fn()
	}
}
