package dust

import "golden-frame/pkg/core"

// FieldStats counts field activity since the field was created.
type FieldStats struct {
	Frames  int
	Skipped int
	Spawned int
	Dropped int
	Faded   int
	Escaped int
}

// Field is a bounded set of live particles.
type Field struct {
	capacity  int
	particles []Particle
	rng       *core.RNG
	stats     FieldStats
}

// NewField returns an empty field. A non-positive capacity falls back to
// DefaultCapacity.
func NewField(capacity int, rng *core.RNG) *Field {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Field{
		capacity:  capacity,
		particles: make([]Particle, 0, capacity),
		rng:       rng,
	}
}

// Capacity returns the maximum number of live particles.
func (f *Field) Capacity() int { return f.capacity }

// Len returns the number of live particles.
func (f *Field) Len() int { return len(f.particles) }

// Particles exposes the live particles. The slice is reused between frames.
func (f *Field) Particles() []Particle { return f.particles }

// Stats returns the activity counters.
func (f *Field) Stats() FieldStats { return f.stats }

// Add inserts p unless the field is full.
func (f *Field) Add(p Particle) bool {
	if len(f.particles) >= f.capacity {
		f.stats.Dropped++
		return false
	}
	f.particles = append(f.particles, p)
	f.stats.Spawned++
	return true
}

// Spawn adds one randomized particle for a w×h surface. It is a no-op when
// the field is full.
func (f *Field) Spawn(w, h float64) bool {
	if len(f.particles) >= f.capacity {
		f.stats.Dropped++
		return false
	}
	return f.Add(Particle{
		X:      f.rng.Between(0, w),
		Y:      f.rng.Between(h*bandTop, h*bandBot),
		Radius: f.rng.Between(minRadius, maxRadius),
		VX:     f.rng.Between(minVX, maxVX),
		VY:     f.rng.Between(minVY, maxVY),
		Alpha:  f.rng.Between(minAlpha, maxAlpha),
	})
}

// Seed spawns half the capacity.
func (f *Field) Seed(w, h float64) {
	for i := 0; i < f.capacity/2; i++ {
		f.Spawn(w, h)
	}
}

// Reset removes every particle. Counters are kept.
func (f *Field) Reset() {
	f.particles = f.particles[:0]
}

// Step advances the field by delta milliseconds and draws it onto ctx for a
// w×h surface.
func (f *Field) Step(ctx Context, delta, w, h float64) {
	f.stats.Frames++
	ctx.ClearRect(0, 0, w, h)

	// Walk backwards so swap-removal and backfill appends never revisit a
	// particle in the same frame.
	for i := len(f.particles) - 1; i >= 0; i-- {
		p := &f.particles[i]
		p.advance(delta)

		alpha := p.EffectiveAlpha()
		ctx.FillCircle(p.X, p.Y, p.Radius, Tint(alpha))

		faded := alpha <= FadeEpsilon
		escaped := p.Escaped()
		if !faded && !escaped {
			continue
		}
		if faded {
			f.stats.Faded++
		} else {
			f.stats.Escaped++
		}
		f.remove(i)
		if f.rng.Chance(BackfillChance) {
			f.Spawn(w, h)
		}
	}

	if f.rng.Chance(AmbientChance) {
		f.Spawn(w, h)
	}
}

func (f *Field) skip() {
	f.stats.Frames++
	f.stats.Skipped++
}

func (f *Field) remove(i int) {
	last := len(f.particles) - 1
	f.particles[i] = f.particles[last]
	f.particles = f.particles[:last]
}
