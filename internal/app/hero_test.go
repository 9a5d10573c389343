package app

import (
	"errors"
	"testing"
	"time"

	"golden-frame/internal/render"
	"golden-frame/pkg/dust"
)

func newTestHero(t *testing.T) (*Hero, *render.Recorder, *Frames, *Viewport) {
	t.Helper()
	vp := NewViewport(800, 600, 2)
	rec := render.NewRecorder(vp.Size)
	frames := NewFrames()
	return NewHero(rec, frames, vp, dust.DefaultConfig()), rec, frames, vp
}

func TestHeroMountSeedsAndSchedules(t *testing.T) {
	hero, rec, frames, vp := newTestHero(t)
	if err := hero.Mount(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := hero.Mount(); err != nil {
		t.Fatalf("second mount: %v", err)
	}
	if w, h := rec.BufferSize(); w != 1600 || h != 1200 {
		t.Fatalf("buffer %dx%d, expected 1600x1200", w, h)
	}
	if frames.Pending() != 1 {
		t.Fatalf("expected one pending frame, got %d", frames.Pending())
	}
	if vp.Listeners() != 1 {
		t.Fatalf("expected one resize listener, got %d", vp.Listeners())
	}
	if got := hero.Animator().Field().Len(); got != 30 {
		t.Fatalf("expected 30 seeded particles, got %d", got)
	}
}

func TestHeroRunsOnFrames(t *testing.T) {
	hero, rec, frames, _ := newTestHero(t)
	if err := hero.Mount(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	for i := 1; i <= 60; i++ {
		frames.Advance(time.Duration(i) * 16 * time.Millisecond)
	}
	if rec.Clears != 60 {
		t.Fatalf("expected 60 cleared frames, got %d", rec.Clears)
	}
	if got := hero.Animator().Stats().Frames; got != 60 {
		t.Fatalf("expected 60 frames, got %d", got)
	}
}

func TestHeroResizeThroughViewport(t *testing.T) {
	hero, rec, _, vp := newTestHero(t)
	if err := hero.Mount(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	before := append([]dust.Particle(nil), hero.Animator().Field().Particles()...)

	vp.Set(1000, 500, 1)
	if w, _ := rec.BufferSize(); w != 1600 {
		t.Fatal("resize delivered before Flush")
	}
	vp.Flush()
	if w, h := rec.BufferSize(); w != 1000 || h != 500 {
		t.Fatalf("buffer %dx%d, expected 1000x500", w, h)
	}
	if rec.Scale() != 1 {
		t.Fatalf("scale %.1f, expected 1", rec.Scale())
	}
	after := hero.Animator().Field().Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("resize changed particle %d", i)
		}
	}
}

func TestHeroUnmountAndRemount(t *testing.T) {
	hero, _, frames, vp := newTestHero(t)
	if err := hero.Mount(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := hero.Toggle(); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if hero.Mounted() || hero.Animator() != nil {
		t.Fatal("hero still mounted after toggle")
	}
	if frames.Pending() != 0 || vp.Listeners() != 0 {
		t.Fatalf("teardown left %d frames and %d listeners", frames.Pending(), vp.Listeners())
	}
	frames.Advance(time.Second)

	if err := hero.Remount(7); err != nil {
		t.Fatalf("remount: %v", err)
	}
	if got := hero.Animator().Field().Len(); got != 30 {
		t.Fatalf("remount seeded %d particles, expected 30", got)
	}
	if p, ok := hero.Parameters().Lookup("seed"); !ok || p.Value != "7" {
		t.Fatalf("seed parameter %+v", p)
	}
	if p, ok := hero.Parameters().Lookup("mounts"); !ok || p.Value != "2" {
		t.Fatalf("mounts parameter %+v", p)
	}
}

func TestHeroMountWithoutSurface(t *testing.T) {
	vp := NewViewport(800, 600, 1)
	frames := NewFrames()
	hero := NewHero(nil, frames, vp, dust.DefaultConfig())

	err := hero.Mount()
	if !errors.Is(err, dust.ErrNoSurface) {
		t.Fatalf("expected ErrNoSurface, got %v", err)
	}
	if hero.Mounted() || frames.Pending() != 0 || vp.Listeners() != 0 {
		t.Fatal("failed mount left state behind")
	}
	if _, ok := hero.Parameters().Lookup("live"); ok {
		t.Fatal("unmounted hero reported live particles")
	}
}
