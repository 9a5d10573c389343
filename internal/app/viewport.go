package app

// Viewport tracks the logical window size and device pixel ratio and fans
// out resize notifications. Changes recorded by Set are delivered on Flush so
// listeners run on the update path, never from inside Layout.
type Viewport struct {
	w, h  float64
	dpr   float64
	dirty bool

	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func()
}

// NewViewport returns a viewport of the given logical size.
func NewViewport(w, h, dpr float64) *Viewport {
	v := &Viewport{}
	v.Set(w, h, dpr)
	v.dirty = false
	return v
}

// Set records the current size and pixel ratio. It reports whether anything
// changed.
func (v *Viewport) Set(w, h, dpr float64) bool {
	if dpr < 1 {
		dpr = 1
	}
	if w == v.w && h == v.h && dpr == v.dpr {
		return false
	}
	v.w, v.h, v.dpr = w, h, dpr
	v.dirty = true
	return true
}

// Size returns the logical size.
func (v *Viewport) Size() (w, h float64) { return v.w, v.h }

// PixelRatio returns the device pixel ratio, at least 1.
func (v *Viewport) PixelRatio() float64 {
	if v.dpr < 1 {
		return 1
	}
	return v.dpr
}

// Subscribe registers fn for resize notifications.
func (v *Viewport) Subscribe(fn func()) int {
	v.nextID++
	v.subs = append(v.subs, subscriber{id: v.nextID, fn: fn})
	return v.nextID
}

// Unsubscribe removes a listener. Unknown ids are ignored.
func (v *Viewport) Unsubscribe(id int) {
	for i, s := range v.subs {
		if s.id == id {
			v.subs = append(v.subs[:i], v.subs[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of registered listeners.
func (v *Viewport) Listeners() int { return len(v.subs) }

// Flush notifies listeners in subscription order if the size changed since
// the last Flush. It reports whether listeners ran.
func (v *Viewport) Flush() bool {
	if !v.dirty {
		return false
	}
	v.dirty = false
	subs := append([]subscriber(nil), v.subs...)
	for _, s := range subs {
		s.fn()
	}
	return true
}
