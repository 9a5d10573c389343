package dust

import (
	"image/color"
	"math"
	"time"
)

// Context is the 2D drawing context of a Surface. Coordinates are logical
// units; the context maps them to buffer pixels through its scale.
type Context interface {
	// ClearRect makes the given logical rectangle transparent.
	ClearRect(x, y, w, h float64)
	// SetScale sets the uniform logical-to-pixel scale. Resizing the
	// surface buffer resets the scale to 1.
	SetScale(s float64)
	// FillCircle fills a circle of radius r centred on (x, y).
	FillCircle(x, y, r float64, clr color.Color)
}

// Surface is the host drawing surface.
type Surface interface {
	// ClientSize reports the logical size of the surface.
	ClientSize() (w, h float64)
	// SetBufferSize resizes the backing pixel buffer.
	SetBufferSize(w, h int)
	// Context returns the drawing context, or nil while the surface is not
	// ready to draw.
	Context() Context
}

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// Scheduler runs callbacks once per display refresh.
type Scheduler interface {
	// Now returns the current high-resolution timestamp.
	Now() time.Duration
	// RequestFrame schedules fn for the next refresh. fn receives the
	// refresh timestamp.
	RequestFrame(fn func(now time.Duration)) FrameHandle
	// CancelFrame drops a pending request. Unknown handles are ignored.
	CancelFrame(h FrameHandle)
}

// ResizeNotifier fans out "the surface size may have changed" events.
type ResizeNotifier interface {
	Subscribe(fn func()) int
	Unsubscribe(id int)
}

// Host bundles the collaborators an Animator runs against.
type Host struct {
	Surface   Surface
	Scheduler Scheduler
	Resize    ResizeNotifier
	// PixelRatio reports the device pixel ratio. A nil func or a result
	// below 1 is treated as 1.
	PixelRatio func() float64
}

func (h Host) pixelRatio() float64 {
	if h.PixelRatio == nil {
		return 1
	}
	dpr := h.PixelRatio()
	if math.IsNaN(dpr) || dpr < 1 {
		return 1
	}
	return dpr
}
