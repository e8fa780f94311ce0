package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	Mass       int
	PanelWidth int
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "gravity", Scale: 4, TPS: 30, Seed: 42, Mass: 20, PanelWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Mass, "mass", c.Mass, "mass of attractors placed with the mouse")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "parameter panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log attractor placement")
}
