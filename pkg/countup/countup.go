// Package countup animates an integer counting from zero to a target.
package countup

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultDuration is how long a counter takes to reach its target.
const DefaultDuration = 1200 * time.Millisecond

// Counter counts linearly from 0 to a target over a fixed duration.
type Counter struct {
	target   int
	duration time.Duration
	tween    *gween.Tween
	value    int
	done     bool
}

// New returns a counter at zero. A non-positive duration uses
// DefaultDuration.
func New(target int, duration time.Duration) *Counter {
	if duration <= 0 {
		duration = DefaultDuration
	}
	c := &Counter{target: target, duration: duration}
	c.Restart()
	return c
}

// Restart rewinds the counter to zero.
func (c *Counter) Restart() {
	c.tween = gween.New(0, float32(c.target), float32(c.duration.Seconds()), ease.Linear)
	c.value = 0
	c.done = false
}

// Update advances the counter by dt and returns the displayed value.
func (c *Counter) Update(dt time.Duration) int {
	if c.done {
		return c.value
	}
	current, finished := c.tween.Update(float32(dt.Seconds()))
	if finished {
		c.value = c.target
		c.done = true
		return c.value
	}
	c.value = int(math.Round(float64(current)))
	return c.value
}

// Value returns the last displayed value.
func (c *Counter) Value() int { return c.value }

// Target returns the final value.
func (c *Counter) Target() int { return c.target }

// Done reports whether the counter reached its target.
func (c *Counter) Done() bool { return c.done }
