//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"golden-frame/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only debug panel listing a component's parameters.
type HUD struct {
	provider core.ParameterProvider
	title    string
	visible  bool

	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided component.
func NewHUD(provider core.ParameterProvider, title string, visible bool) *HUD {
	if title == "" {
		title = "Debug"
	}
	return &HUD{provider: provider, title: title, visible: visible}
}

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update toggles the panel on D and refreshes the snapshot while visible.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		h.visible = !h.visible
	}
	if !h.visible || h.provider == nil {
		return
	}
	h.snapshot = h.provider.Parameters()
}

// Draw paints the panel in the top-left corner, scaled by dpr.
func (h *HUD) Draw(screen *ebiten.Image, dpr float64) {
	if !h.Visible() {
		return
	}
	rows := 0
	for _, g := range h.snapshot.Groups {
		rows += 1 + len(g.Params)
	}
	height := controlsTop + rows*lineHeight + panelPadding
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(panelWidth, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	h.drawRows()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dpr, dpr)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRows() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	ebitenutil.DebugPrintAt(h.panel, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), panelPadding, panelPadding+headerBaseline+2)

	y := controlsTop
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y+labelBaseline, color.RGBA{R: 212, G: 175, B: 55, A: 255})
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding+8, y+labelBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, panelWidth-panelPadding-bounds.Dx(), y+labelBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
	}
}

const (
	panelWidth     = 220
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 12
	labelBaseline  = 12
	controlsTop    = panelPadding + headerBaseline + 22
)
