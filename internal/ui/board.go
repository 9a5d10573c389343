package ui

import (
	"time"

	"golden-frame/pkg/countup"
	"golden-frame/pkg/marquee"
)

// Board holds the animated footer state: one counter per stat and the
// sponsor marquee.
type Board struct {
	stats    []Stat
	counters []*countup.Counter
	marquee  *marquee.Marquee
}

// NewBoard starts every counter at zero.
func NewBoard(stats []Stat, sponsors []string) *Board {
	b := &Board{
		stats:   append([]Stat(nil), stats...),
		marquee: marquee.New(sponsors, marquee.DefaultPeriod),
	}
	for _, s := range b.stats {
		b.counters = append(b.counters, countup.New(s.Target, countup.DefaultDuration))
	}
	return b
}

// Update advances the counters and, unless hovered, the marquee.
func (b *Board) Update(dt time.Duration) {
	for _, c := range b.counters {
		c.Update(dt)
	}
	b.marquee.Update(dt)
}

// Restart rewinds every counter to zero.
func (b *Board) Restart() {
	for _, c := range b.counters {
		c.Restart()
	}
}

// Stats returns the figures shown on the board.
func (b *Board) Stats() []Stat { return b.stats }

// Values returns the currently displayed number for each stat.
func (b *Board) Values() []int {
	out := make([]int, len(b.counters))
	for i, c := range b.counters {
		out[i] = c.Value()
	}
	return out
}

// Marquee returns the sponsor marquee.
func (b *Board) Marquee() *marquee.Marquee { return b.marquee }
