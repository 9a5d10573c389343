package app

import (
	"flag"

	"golden-frame/pkg/dust"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	TPS      int
	Seed     int64
	Capacity int
	Debug    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1280, Height: 720, TPS: 60, Seed: 42, Capacity: dust.DefaultCapacity}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in logical pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in logical pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the dust field")
	fs.IntVar(&c.Capacity, "capacity", c.Capacity, "maximum number of live dust particles")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the debug panel on start")
}

// Dust returns the animator configuration.
func (c *Config) Dust() dust.Config {
	return dust.Config{Capacity: c.Capacity, Seed: c.Seed}
}
