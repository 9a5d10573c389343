package render

import (
	"image/color"
	"math"
)

// Stop is a colour stop of a vertical gradient at offset T in [0, 1].
type Stop struct {
	T     float64
	Color color.NRGBA
}

// HeroBackdrop darkens the hero from top to bottom: the section overlay
// followed by the black vignette that fades in towards the bottom edge.
var HeroBackdrop = []Stop{
	{T: 0, Color: color.NRGBA{R: 3, G: 3, B: 3, A: 117}},
	{T: 0.5, Color: color.NRGBA{R: 3, G: 3, B: 3, A: 140}},
	{T: 1, Color: color.NRGBA{R: 0, G: 0, B: 0, A: 210}},
}

// fillGradientRGBA writes a w×h vertical gradient into buf as premultiplied
// RGBA, the layout ebiten.Image.WritePixels expects. When stops is empty the
// buffer is cleared to transparent black.
func fillGradientRGBA(buf []byte, w, h int, stops []Stop) {
	if len(stops) == 0 {
		for i := range buf[:4*w*h] {
			buf[i] = 0
		}
		return
	}
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		col := color.RGBAModel.Convert(gradientAt(stops, t)).(color.RGBA)
		row := y * w * 4
		for x := 0; x < w; x++ {
			base := row + x*4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

func gradientAt(stops []Stop, t float64) color.NRGBA {
	if t <= stops[0].T {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.T {
			prev := stops[i-1]
			span := curr.T - prev.T
			var local float64
			if span > 0 {
				local = (t - prev.T) / span
			}
			return lerpNRGBA(prev.Color, curr.Color, local)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
