package dust

import (
	"image/color"
	"math"
)

const (
	// DefaultCapacity is the maximum number of live particles in a field.
	DefaultCapacity = 60

	// MotionScale converts velocity units into per-millisecond motion; a
	// ~16.6ms frame moves a particle by about one velocity unit.
	MotionScale = 0.06
	// DecayRate is the opacity lost per millisecond of age.
	DecayRate = 0.00006
	// FadeEpsilon is the effective alpha at or below which a particle retires.
	FadeEpsilon = 0.01
	// TopMargin is how far above the top edge a particle may rise before it
	// retires.
	TopMargin = 10.0

	// BackfillChance is the probability that a retirement is immediately
	// followed by a spawn attempt.
	BackfillChance = 0.8
	// AmbientChance is the per-frame probability of one extra spawn attempt.
	AmbientChance = 0.12
)

// Spawn ranges. Positions are expressed as fractions of the surface size.
const (
	minRadius = 0.6
	maxRadius = 2.2
	minVX     = -0.1
	maxVX     = 0.1
	minVY     = -0.25
	maxVY     = -0.05
	minAlpha  = 0.08
	maxAlpha  = 0.28
	bandTop   = 0.1
	bandBot   = 0.7
)

// Gold is the base tone of every particle.
var Gold = color.NRGBA{R: 212, G: 175, B: 55, A: 255}

// Particle is a single drifting dust mote. Age is in milliseconds.
type Particle struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Alpha  float64
	Age    float64
}

// EffectiveAlpha returns the decayed opacity for the particle's current age.
func (p Particle) EffectiveAlpha() float64 {
	return EffectiveAlpha(p.Alpha, p.Age)
}

// EffectiveAlpha returns max(0, alpha - age*DecayRate).
func EffectiveAlpha(alpha, age float64) float64 {
	return math.Max(0, alpha-age*DecayRate)
}

// Retired reports whether the particle has faded out or drifted off the top.
func (p Particle) Retired() bool {
	return p.Faded() || p.Escaped()
}

// Faded reports whether the effective alpha has dropped to FadeEpsilon.
func (p Particle) Faded() bool {
	return p.EffectiveAlpha() <= FadeEpsilon
}

// Escaped reports whether the particle rose past the top margin.
func (p Particle) Escaped() bool {
	return p.Y < -TopMargin
}

// advance moves and ages the particle by delta milliseconds.
func (p *Particle) advance(delta float64) {
	p.X += p.VX * delta * MotionScale
	p.Y += p.VY * delta * MotionScale
	p.Age += delta
}

// Tint returns Gold with its alpha channel set from a [0, 1] opacity.
func Tint(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c := Gold
	c.A = uint8(math.Round(alpha * 255))
	return c
}
