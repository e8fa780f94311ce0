package field

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidConfig is returned by Validate for configurations that cannot
// describe a grid.
var ErrInvalidConfig = errors.New("invalid field config")

const (
	// MappingIdentity passes world positions straight through as grid coordinates.
	MappingIdentity = "identity"
	// MappingScaled divides world positions by the field resolution.
	MappingScaled = "scaled"
)

// Params holds the force tuning constants.
type Params struct {
	// Gravity is the constant G in G*mass/distance².
	Gravity int `mapstructure:"gravity"`
	// EdgeStrength is the per-cell step of the boundary repulsion ramp.
	EdgeStrength int `mapstructure:"edge_strength"`
	// EdgeDist is the width of the boundary band in cells.
	EdgeDist int `mapstructure:"edge_dist"`
}

// Config describes the world the field overlays and how it is sampled.
type Config struct {
	WorldWidth  int    `mapstructure:"world_width"`
	WorldHeight int    `mapstructure:"world_height"`
	Resolution  int    `mapstructure:"resolution"`
	Mapping     string `mapstructure:"mapping"`

	Params Params `mapstructure:"params"`
}

// DefaultConfig returns the standard configuration: a 2600x1000 world sampled
// every 10 units, giving a 260x100 grid.
func DefaultConfig() Config {
	return Config{
		WorldWidth:  2600,
		WorldHeight: 1000,
		Resolution:  10,
		Mapping:     MappingIdentity,
		Params: Params{
			Gravity:      1000,
			EdgeStrength: 1000,
			EdgeDist:     10,
		},
	}
}

// Cols returns the grid width in cells.
func (c Config) Cols() int { return c.WorldWidth / c.Resolution }

// Rows returns the grid height in cells.
func (c Config) Rows() int { return c.WorldHeight / c.Resolution }

// Validate reports whether the configuration describes a non-empty grid with a
// known mapping.
func (c Config) Validate() error {
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution must be positive, got %d", ErrInvalidConfig, c.Resolution)
	}
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("%w: world must be positive, got %dx%d", ErrInvalidConfig, c.WorldWidth, c.WorldHeight)
	}
	if c.Cols() == 0 || c.Rows() == 0 {
		return fmt.Errorf("%w: world %dx%d is smaller than resolution %d",
			ErrInvalidConfig, c.WorldWidth, c.WorldHeight, c.Resolution)
	}
	if c.Params.EdgeDist < 0 {
		return fmt.Errorf("%w: edge band must not be negative, got %d", ErrInvalidConfig, c.Params.EdgeDist)
	}
	switch c.Mapping {
	case MappingIdentity, MappingScaled:
	default:
		return fmt.Errorf("%w: unknown mapping %q", ErrInvalidConfig, c.Mapping)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("world_width", &c.WorldWidth)
	positive("world_height", &c.WorldHeight)
	positive("resolution", &c.Resolution)
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.Gravity = parsed
		}
	}
	if v, ok := cfg["edge_strength"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.EdgeStrength = parsed
		}
	}
	if v, ok := cfg["edge_dist"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.EdgeDist = parsed
		}
	}
	if v, ok := cfg["mapping"]; ok && (v == MappingIdentity || v == MappingScaled) {
		c.Mapping = v
	}
	if c.Cols() == 0 || c.Rows() == 0 {
		d := DefaultConfig()
		c.WorldWidth, c.WorldHeight, c.Resolution = d.WorldWidth, d.WorldHeight, d.Resolution
	}
	return c
}
