//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GradientPainter caches a vertical gradient image sized to its target.
type GradientPainter struct {
	w, h  int
	stops []Stop
	img   *ebiten.Image
	buf   []byte
}

// NewGradientPainter returns a painter for the given stops.
func NewGradientPainter(stops []Stop) *GradientPainter {
	return &GradientPainter{stops: append([]Stop(nil), stops...)}
}

// Draw paints the gradient over the whole of dst, rebuilding it when the
// destination size changed.
func (gp *GradientPainter) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if gp.img == nil || gp.w != w || gp.h != h {
		if gp.img != nil {
			gp.img.Deallocate()
		}
		gp.w, gp.h = w, h
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
		fillGradientRGBA(gp.buf, w, h, gp.stops)
		gp.img.WritePixels(gp.buf)
	}
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the cached image.
func (gp *GradientPainter) Size() (int, int) { return gp.w, gp.h }
