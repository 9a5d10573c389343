package core

import "time"

// Clock reports high-resolution timestamps relative to its creation, the way
// a display refresh callback receives them.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock on the wall time source.
func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc starts a clock on a custom time source.
func NewClockFunc(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{start: now(), now: now}
}

// Now returns the time elapsed since the clock started. It never goes
// backwards.
func (c *Clock) Now() time.Duration {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}
