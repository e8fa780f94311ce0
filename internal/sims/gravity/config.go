package gravity

import (
	"strconv"

	"gravfield/internal/field"
)

// Params holds tunables for attractor placement and probe motion.
type Params struct {
	// Attractors is the number of sources placed on Reset.
	Attractors int `mapstructure:"attractors"`
	MassMin    int `mapstructure:"mass_min"`
	MassMax    int `mapstructure:"mass_max"`

	// Probes is the number of free bodies steered by the field.
	Probes int `mapstructure:"probes"`
	// ForceScale divides a cell's force into a per-step velocity change in
	// sub-units (1/16 of a world unit).
	ForceScale int `mapstructure:"force_scale"`
	// MaxSpeed caps probe speed per axis, in world units per step.
	MaxSpeed int `mapstructure:"max_speed"`
}

// Config controls the gravity simulation.
type Config struct {
	Field field.Config `mapstructure:"field"`

	Seed int64 `mapstructure:"seed"`

	Params Params `mapstructure:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Field: field.DefaultConfig(),
		Seed:  1337,
		Params: Params{
			Attractors: 4,
			MassMin:    5,
			MassMax:    30,
			Probes:     64,
			ForceScale: 500,
			MaxSpeed:   3,
		},
	}
}

// Sanitize pins values that would stall or break the simulation back into a
// usable range.
func (c Config) Sanitize() Config {
	if c.Params.Attractors < 0 {
		c.Params.Attractors = 0
	}
	if c.Params.Probes < 0 {
		c.Params.Probes = 0
	}
	if c.Params.MassMin < 0 {
		c.Params.MassMin = 0
	}
	if c.Params.MassMax < c.Params.MassMin {
		c.Params.MassMax = c.Params.MassMin
	}
	if c.Params.ForceScale <= 0 {
		c.Params.ForceScale = 1
	}
	if c.Params.MaxSpeed <= 0 {
		c.Params.MaxSpeed = 1
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Field keys are handled by field.FromMap.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Field = field.FromMap(cfg)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["attractors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Attractors = parsed
		}
	}
	if v, ok := cfg["mass_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MassMin = parsed
		}
	}
	if v, ok := cfg["mass_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MassMax = parsed
		}
	}
	if v, ok := cfg["probes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Probes = parsed
		}
	}
	if v, ok := cfg["force_scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.ForceScale = parsed
		}
	}
	if v, ok := cfg["max_speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.MaxSpeed = parsed
		}
	}
	return c.Sanitize()
}
