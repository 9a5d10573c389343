package render

import (
	"image/color"

	"golden-frame/pkg/dust"
)

// Circle is a recorded FillCircle call in logical units.
type Circle struct {
	X, Y, R float64
	Color   color.NRGBA
}

// Recorder is an in-memory dust.Surface that records draw calls instead of
// rasterizing them. The last cleared frame's circles are kept.
type Recorder struct {
	size  func() (float64, float64)
	bufW  int
	bufH  int
	scale float64

	// Detached makes Context report nil, like a surface that is not ready.
	Detached bool

	Clears  int
	Fills   int
	Resizes int
	frame   []Circle
}

// NewRecorder returns a recorder whose logical size is read from size.
func NewRecorder(size func() (float64, float64)) *Recorder {
	return &Recorder{size: size, scale: 1}
}

// ClientSize reports the logical size.
func (r *Recorder) ClientSize() (float64, float64) { return r.size() }

// SetBufferSize records the backing buffer size and resets the scale.
func (r *Recorder) SetBufferSize(w, h int) {
	r.bufW, r.bufH = w, h
	r.scale = 1
	r.Resizes++
}

// BufferSize returns the last buffer size.
func (r *Recorder) BufferSize() (int, int) { return r.bufW, r.bufH }

// Scale returns the current logical-to-pixel scale.
func (r *Recorder) Scale() float64 { return r.scale }

// Context returns the recorder itself unless it is detached or has no buffer.
func (r *Recorder) Context() dust.Context {
	if r.Detached || r.bufW <= 0 || r.bufH <= 0 {
		return nil
	}
	return r
}

// ClearRect starts a new recorded frame.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Clears++
	r.frame = r.frame[:0]
}

// SetScale sets the logical-to-pixel scale.
func (r *Recorder) SetScale(s float64) { r.scale = s }

// FillCircle records a filled circle.
func (r *Recorder) FillCircle(x, y, rad float64, clr color.Color) {
	r.Fills++
	r.frame = append(r.frame, Circle{X: x, Y: y, R: rad, Color: color.NRGBAModel.Convert(clr).(color.NRGBA)})
}

// Frame returns the circles drawn since the last clear.
func (r *Recorder) Frame() []Circle { return r.frame }
