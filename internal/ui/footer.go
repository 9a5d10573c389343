//go:build ebiten

package ui

import (
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Footer draws the stat counters and the sponsor marquee along the bottom
// edge of the window.
type Footer struct {
	board *Board
	panel *ebiten.Image

	// Logical geometry of the marquee band inside the panel, for hover.
	bandTop    float64
	bandBottom float64
	panelTop   float64
}

// NewFooter constructs a footer over the festival stats and sponsors.
func NewFooter() *Footer {
	return &Footer{board: NewBoard(FestivalStats, Sponsors)}
}

// Board exposes the animated state.
func (f *Footer) Board() *Board { return f.board }

// Restart rewinds the counters.
func (f *Footer) Restart() { f.board.Restart() }

// Update advances the animations. The marquee pauses while the cursor is over
// it; dpr converts the cursor from screen pixels to logical units.
func (f *Footer) Update(dt time.Duration, dpr float64) {
	if dpr < 1 {
		dpr = 1
	}
	_, cy := ebiten.CursorPosition()
	ly := float64(cy)/dpr - f.panelTop
	f.board.Marquee().SetPaused(ly >= f.bandTop && ly < f.bandBottom)
	f.board.Update(dt)
}

// Draw renders the footer panel onto screen for a logical viewport of
// width×height scaled by dpr.
func (f *Footer) Draw(screen *ebiten.Image, width, height, dpr float64) {
	w := int(width)
	if w <= 0 || height < footerHeight {
		return
	}
	if f.panel == nil || f.panel.Bounds().Dx() != w {
		if f.panel != nil {
			f.panel.Deallocate()
		}
		f.panel = ebiten.NewImage(w, footerHeight)
	}
	f.panel.Fill(color.RGBA{R: 7, G: 7, B: 7, A: 235})
	vector.FillRect(f.panel, 0, 0, float32(w), 2, goldFaint, false)

	f.drawStats(w)
	f.drawMarquee(w)

	f.panelTop = height - footerHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, f.panelTop)
	op.GeoM.Scale(dpr, dpr)
	screen.DrawImage(f.panel, op)
}

func (f *Footer) drawStats(w int) {
	face := basicfont.Face7x13
	stats := f.board.Stats()
	values := f.board.Values()
	x := w - footerPadding - len(stats)*statWidth
	for i, s := range stats {
		value := strconv.Itoa(values[i])
		vb := text.BoundString(face, value)
		lb := text.BoundString(face, s.Label)
		center := x + i*statWidth + statWidth/2
		text.Draw(f.panel, value, face, center-vb.Dx()/2, footerPadding+13, goldBright)
		text.Draw(f.panel, s.Label, face, center-lb.Dx()/2, footerPadding+32, grayText)
	}
	text.Draw(f.panel, "Still deciding? Secure your red-carpet moment.", face, footerPadding, footerPadding+13, goldBright)
	text.Draw(f.panel, "BFF  The Golden Frame", face, footerPadding, footerPadding+32, grayText)
}

func (f *Footer) drawMarquee(w int) {
	face := basicfont.Face7x13
	top := footerHeight - footerPadding - marqueeHeight
	f.bandTop = float64(top)
	f.bandBottom = float64(top + marqueeHeight)
	vector.FillRect(f.panel, 0, float32(top), float32(w), marqueeHeight, color.RGBA{R: 20, G: 17, B: 6, A: 255}, false)

	items := f.board.Marquee().Items()
	stripWidth := 0
	for _, item := range items {
		stripWidth += text.BoundString(face, item).Dx() + marqueeGap
	}
	x := f.board.Marquee().Offset(float64(stripWidth))
	baseline := top + (marqueeHeight+10)/2
	for _, item := range items {
		iw := text.BoundString(face, item).Dx()
		if x+float64(iw) >= 0 && x < float64(w) {
			text.Draw(f.panel, item, face, int(x), baseline, grayText)
		}
		x += float64(iw + marqueeGap)
	}
}

var (
	goldBright = color.RGBA{R: 253, G: 224, B: 71, A: 255}
	goldFaint  = color.RGBA{R: 212, G: 175, B: 55, A: 60}
	grayText   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	footerHeight  = 96
	footerPadding = 12
	statWidth     = 96
	marqueeHeight = 28
	marqueeGap    = 48
)
