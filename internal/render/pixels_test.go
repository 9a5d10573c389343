package render

import (
	"image/color"
	"testing"
)

func TestFillGradientRGBAInterpolatesRows(t *testing.T) {
	stops := []Stop{
		{T: 0, Color: color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{T: 1, Color: color.NRGBA{R: 200, G: 100, B: 50, A: 255}},
	}
	const w, h = 3, 5
	buf := make([]byte, 4*w*h)
	fillGradientRGBA(buf, w, h, stops)

	rows := []struct {
		y       int
		r, g, b uint8
	}{
		{0, 0, 0, 0},
		{2, 100, 50, 25},
		{4, 200, 100, 50},
	}
	for _, row := range rows {
		for x := 0; x < w; x++ {
			base := (row.y*w + x) * 4
			if buf[base] != row.r || buf[base+1] != row.g || buf[base+2] != row.b || buf[base+3] != 255 {
				t.Fatalf("pixel (%d,%d) = %v, expected %d,%d,%d,255", x, row.y, buf[base:base+4], row.r, row.g, row.b)
			}
		}
	}
}

func TestFillGradientRGBAPremultiplies(t *testing.T) {
	stops := []Stop{{T: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 128}}}
	buf := make([]byte, 4)
	fillGradientRGBA(buf, 1, 1, stops)
	if buf[0] != 128 || buf[3] != 128 {
		t.Fatalf("expected premultiplied white at half alpha, got %v", buf)
	}
}

func TestFillGradientRGBAEmptyStopsClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillGradientRGBA(buf, 2, 1, nil)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("byte %d = %d, expected 0", i, v)
		}
	}
}

func TestGradientAtClampsOutsideStops(t *testing.T) {
	first := color.NRGBA{R: 1, A: 255}
	last := color.NRGBA{R: 9, A: 255}
	stops := []Stop{{T: 0.2, Color: first}, {T: 0.8, Color: last}}
	if got := gradientAt(stops, 0); got != first {
		t.Fatalf("before first stop got %v", got)
	}
	if got := gradientAt(stops, 1); got != last {
		t.Fatalf("after last stop got %v", got)
	}
}
