// Package marquee scrolls a repeated strip of items horizontally in a loop.
package marquee

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultPeriod is the time for the strip to scroll by one copy of its items.
const DefaultPeriod = 18 * time.Second

// loopFraction is how far the doubled strip travels per period; after it the
// second copy sits exactly where the first one started.
const loopFraction = 0.5

// Marquee tracks the scroll offset of a doubled item strip.
type Marquee struct {
	items  []string
	period time.Duration
	tween  *gween.Tween
	frac   float64
	paused bool
}

// New returns a marquee over items. A non-positive period uses DefaultPeriod.
func New(items []string, period time.Duration) *Marquee {
	if period <= 0 {
		period = DefaultPeriod
	}
	m := &Marquee{items: append([]string(nil), items...), period: period}
	m.rewind()
	return m
}

func (m *Marquee) rewind() {
	m.tween = gween.New(0, loopFraction, float32(m.period.Seconds()), ease.Linear)
	m.frac = 0
}

// Items returns the strip contents: the items twice, back to back.
func (m *Marquee) Items() []string {
	strip := make([]string, 0, 2*len(m.items))
	strip = append(strip, m.items...)
	return append(strip, m.items...)
}

// SetPaused freezes or resumes scrolling.
func (m *Marquee) SetPaused(paused bool) { m.paused = paused }

// Paused reports whether scrolling is frozen.
func (m *Marquee) Paused() bool { return m.paused }

// Update advances the scroll by dt unless paused.
func (m *Marquee) Update(dt time.Duration) {
	if m.paused || len(m.items) == 0 {
		return
	}
	current, finished := m.tween.Update(float32(dt.Seconds()))
	if finished {
		// Time past the end of the period carries into the next loop.
		carry := math.Mod(float64(m.tween.Overflow), m.period.Seconds())
		m.tween.Reset()
		current, _ = m.tween.Set(float32(carry))
	}
	m.frac = float64(current)
}

// Fraction returns the scrolled share of the strip width in [0, 0.5).
func (m *Marquee) Fraction() float64 { return m.frac }

// Offset returns the horizontal translation for a strip of the given width.
func (m *Marquee) Offset(width float64) float64 {
	return -m.frac * width
}
