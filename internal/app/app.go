//go:build ebiten

package app

import (
	"fmt"
	"math"
	"time"

	"golden-frame/internal/core"
	"golden-frame/internal/render"
	"golden-frame/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the hero page to the ebiten.Game interface.
type Game struct {
	cfg      *Config
	clock    *core.Clock
	frames   *Frames
	viewport *Viewport
	canvas   *render.Canvas
	backdrop *render.GradientPainter
	hero     *Hero
	footer   *ui.Footer
	hud      *ui.HUD

	lastTick time.Duration
}

// New constructs a Game with the hero mounted.
func New(cfg *Config) (*Game, error) {
	vp := NewViewport(float64(cfg.Width), float64(cfg.Height), 1)
	canvas := render.NewCanvas(vp.Size)
	frames := NewFrames()
	hero := NewHero(canvas, frames, vp, cfg.Dust())

	g := &Game{
		cfg:      cfg,
		clock:    core.NewClock(),
		frames:   frames,
		viewport: vp,
		canvas:   canvas,
		backdrop: render.NewGradientPainter(render.HeroBackdrop),
		hero:     hero,
		footer:   ui.NewFooter(),
		hud:      ui.NewHUD(hero, "Golden Frame", cfg.Debug),
	}
	if err := hero.Mount(); err != nil {
		return nil, err
	}
	return g, nil
}

// Hero returns the hero section.
func (g *Game) Hero() *Hero { return g.hero }

// Update handles input, delivers resizes and fires the pending frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if err := g.hero.Toggle(); err != nil {
			return err
		}
		if !g.hero.Mounted() {
			g.canvas.SetBufferSize(0, 0)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.remount(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.remount(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.viewport.Flush()

	now := g.clock.Now()
	dt := now - g.lastTick
	g.lastTick = now
	g.frames.Advance(now)

	g.footer.Update(dt, g.viewport.PixelRatio())
	g.hud.Update()
	return nil
}

func (g *Game) remount(seed int64) error {
	if err := g.hero.Remount(seed); err != nil {
		return fmt.Errorf("remount with seed %d: %w", seed, err)
	}
	g.footer.Restart()
	return nil
}

// Draw renders the backdrop, the dust canvas and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.backdrop.Draw(screen)
	g.canvas.Draw(screen)

	w, h := g.viewport.Size()
	dpr := g.viewport.PixelRatio()
	g.footer.Draw(screen, w, h, dpr)
	g.hud.Draw(screen, dpr)
}

// Layout records the logical window size and device scale factor and returns
// the physical screen size, so the canvas maps one buffer pixel to one device
// pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	g.viewport.Set(float64(outsideWidth), float64(outsideHeight), dpr)
	pr := g.viewport.PixelRatio()
	return int(math.Floor(float64(outsideWidth) * pr)), int(math.Floor(float64(outsideHeight) * pr))
}
