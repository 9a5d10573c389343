//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"

	"golden-frame/pkg/dust"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is an ebiten image-backed dust.Surface. Drawing calls take logical
// units and are scaled into the backing image.
type Canvas struct {
	size  func() (float64, float64)
	img   *ebiten.Image
	scale float64
}

// NewCanvas returns a canvas whose logical size is read from size. It has no
// backing image until SetBufferSize.
func NewCanvas(size func() (float64, float64)) *Canvas {
	return &Canvas{size: size, scale: 1}
}

// ClientSize reports the logical size.
func (c *Canvas) ClientSize() (float64, float64) { return c.size() }

// SetBufferSize reallocates the backing image and resets the scale.
func (c *Canvas) SetBufferSize(w, h int) {
	c.scale = 1
	if w <= 0 || h <= 0 {
		if c.img != nil {
			c.img.Deallocate()
			c.img = nil
		}
		return
	}
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			c.img.Clear()
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

// Context returns the canvas, or nil while it has no backing image.
func (c *Canvas) Context() dust.Context {
	if c.img == nil {
		return nil
	}
	return c
}

// ClearRect clears the pixels covered by the logical rectangle.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	s := c.scale
	r := image.Rect(
		int(math.Floor(x*s)), int(math.Floor(y*s)),
		int(math.Ceil((x+w)*s)), int(math.Ceil((y+h)*s)),
	)
	bounds := c.img.Bounds()
	r = r.Intersect(bounds)
	switch {
	case r.Empty():
	case r == bounds:
		c.img.Clear()
	default:
		c.img.SubImage(r).(*ebiten.Image).Clear()
	}
}

// SetScale sets the logical-to-pixel scale.
func (c *Canvas) SetScale(s float64) { c.scale = s }

// FillCircle fills an anti-aliased circle.
func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	s := c.scale
	vector.FillCircle(c.img, float32(x*s), float32(y*s), float32(r*s), clr, true)
}

// Draw composites the canvas onto dst at the origin.
func (c *Canvas) Draw(dst *ebiten.Image) {
	if c.img == nil {
		return
	}
	dst.DrawImage(c.img, nil)
}
