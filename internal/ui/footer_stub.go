//go:build !ebiten

package ui

import "time"

// Footer is a no-op placeholder used when the ebiten build tag is absent.
type Footer struct{}

// NewFooter constructs a stub footer.
func NewFooter() *Footer { return &Footer{} }

// Restart is a no-op in headless builds.
func (f *Footer) Restart() {}

// Update is a no-op in headless builds.
func (f *Footer) Update(time.Duration, float64) {}

// Draw is a no-op placeholder.
func (f *Footer) Draw(any, float64, float64, float64) {}
