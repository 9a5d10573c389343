package dust

import "strconv"

// Config controls an Animator.
type Config struct {
	Capacity int
	Seed     int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Capacity: DefaultCapacity, Seed: 42}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["capacity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Capacity = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func (c Config) normalized() Config {
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	return c
}
