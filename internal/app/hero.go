package app

import (
	"fmt"

	"golden-frame/internal/core"
	"golden-frame/pkg/dust"
)

// Hero owns the dust animator for the hero section and its mount cycle.
type Hero struct {
	surface  dust.Surface
	frames   *Frames
	viewport *Viewport
	cfg      dust.Config
	anim     *dust.Animator
	mounts   int
}

// NewHero wires a hero section to its surface. It is not mounted.
func NewHero(surface dust.Surface, frames *Frames, viewport *Viewport, cfg dust.Config) *Hero {
	return &Hero{surface: surface, frames: frames, viewport: viewport, cfg: cfg}
}

// Mount activates the animator. Mounting a mounted hero is a no-op.
func (h *Hero) Mount() error {
	if h.anim != nil {
		return nil
	}
	host := dust.Host{
		Surface:    h.surface,
		Scheduler:  h.frames,
		Resize:     h.viewport,
		PixelRatio: h.viewport.PixelRatio,
	}
	anim, err := dust.Activate(host, h.cfg)
	if err != nil {
		return fmt.Errorf("mount hero: %w", err)
	}
	h.anim = anim
	h.mounts++
	return nil
}

// Unmount tears the animator down. The next Mount starts from an empty field.
func (h *Hero) Unmount() {
	if h.anim == nil {
		return
	}
	h.anim.Deactivate()
	h.anim = nil
}

// Toggle mounts an unmounted hero and unmounts a mounted one.
func (h *Hero) Toggle() error {
	if h.anim != nil {
		h.Unmount()
		return nil
	}
	return h.Mount()
}

// Remount tears down and mounts again with a new seed.
func (h *Hero) Remount(seed int64) error {
	h.Unmount()
	h.cfg.Seed = seed
	return h.Mount()
}

// Mounted reports whether the animator is running.
func (h *Hero) Mounted() bool { return h.anim != nil }

// Animator returns the running animator, or nil when unmounted.
func (h *Hero) Animator() *dust.Animator { return h.anim }

// Parameters reports the hero state for the debug panel.
func (h *Hero) Parameters() core.ParameterSnapshot {
	w, hh := h.viewport.Size()
	surface := core.ParameterGroup{
		Name: "Surface",
		Params: []core.Parameter{
			core.FloatParam("width", "Width", w, 0),
			core.FloatParam("height", "Height", hh, 0),
			core.FloatParam("dpr", "Pixel ratio", h.viewport.PixelRatio(), 2),
		},
	}
	field := core.ParameterGroup{
		Name: "Dust",
		Params: []core.Parameter{
			core.BoolParam("mounted", "Mounted", h.Mounted()),
			core.IntParam("mounts", "Mounts", h.mounts),
			core.IntParam("capacity", "Capacity", h.cfg.Capacity),
			core.Parameter{Key: "seed", Label: "Seed", Value: fmt.Sprint(h.cfg.Seed)},
		},
	}
	if h.anim != nil {
		stats := h.anim.Stats()
		field.Params = append(field.Params,
			core.IntParam("live", "Live", h.anim.Field().Len()),
			core.IntParam("frames", "Frames", stats.Frames),
			core.IntParam("skipped", "Skipped", stats.Skipped),
			core.IntParam("spawned", "Spawned", stats.Spawned),
			core.IntParam("dropped", "Dropped", stats.Dropped),
			core.IntParam("faded", "Faded", stats.Faded),
			core.IntParam("escaped", "Escaped", stats.Escaped),
		)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{surface, field}}
}
