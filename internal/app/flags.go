package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Cascade  bool
	PerFrame int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "pipes", Width: 128, Height: 50, Scale: 4, TPS: 60, Seed: 42, PerFrame: 1, LogLevel: "info"}
}

// Bind attaches the flags shared by every binary to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "generator to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generator reset")
	fs.BoolVar(&c.Cascade, "cascade", c.Cascade, "propagate constraints transitively")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// BindViewer attaches the window-only flags.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.PerFrame, "per-frame", c.PerFrame, "collapses per tick")
}

// SimConfig converts the flags into the key/value form sim factories accept.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"cascade": strconv.FormatBool(c.Cascade),
	}
}
