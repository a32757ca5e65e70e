package pipes

import "strconv"

// Config controls the pipe generator.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Cascade propagates constraints transitively after every collapse.
	Cascade bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 50, Seed: 42}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["cascade"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Cascade = parsed
		}
	}
	return c
}

// Map is the inverse of FromMap.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"cascade": strconv.FormatBool(c.Cascade),
	}
}
