// Package config loads the headless tooling configuration from an optional
// YAML file and GRAVFIELD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gravfield/internal/field"
	"gravfield/internal/sims/gravity"
)

// EnvPrefix is prepended to every environment override, e.g.
// GRAVFIELD_FIELD_PARAMS_GRAVITY.
const EnvPrefix = "GRAVFIELD"

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	ServiceName string `mapstructure:"service_name"`
	AddSource   bool   `mapstructure:"add_source"`

	// LogFile enables a JSON file sink rotated by lumberjack.
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// SimConfig holds the host simulation settings that are not part of the field.
type SimConfig struct {
	Seed   int64          `mapstructure:"seed"`
	Params gravity.Params `mapstructure:"params"`
}

// Config is the root configuration.
type Config struct {
	Field  field.Config `mapstructure:"field"`
	Sim    SimConfig    `mapstructure:"sim"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// Default returns the configuration used when no file or env override is set.
func Default() Config {
	sim := gravity.DefaultConfig()
	return Config{
		Field: sim.Field,
		Sim:   SimConfig{Seed: sim.Seed, Params: sim.Params},
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "gravfield",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      7,
		},
	}
}

// Gravity assembles the host simulation config.
func (c Config) Gravity() gravity.Config {
	return gravity.Config{Field: c.Field, Seed: c.Sim.Seed, Params: c.Sim.Params}
}

// Load reads path (or ./gravfield.yaml when path is empty and the file
// exists), applies environment overrides and validates the field section.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gravfield")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Field.Validate(); err != nil {
		return Config{}, fmt.Errorf("field section: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("field.world_width", d.Field.WorldWidth)
	v.SetDefault("field.world_height", d.Field.WorldHeight)
	v.SetDefault("field.resolution", d.Field.Resolution)
	v.SetDefault("field.mapping", d.Field.Mapping)
	v.SetDefault("field.params.gravity", d.Field.Params.Gravity)
	v.SetDefault("field.params.edge_strength", d.Field.Params.EdgeStrength)
	v.SetDefault("field.params.edge_dist", d.Field.Params.EdgeDist)

	v.SetDefault("sim.seed", d.Sim.Seed)
	v.SetDefault("sim.params.attractors", d.Sim.Params.Attractors)
	v.SetDefault("sim.params.mass_min", d.Sim.Params.MassMin)
	v.SetDefault("sim.params.mass_max", d.Sim.Params.MassMax)
	v.SetDefault("sim.params.probes", d.Sim.Params.Probes)
	v.SetDefault("sim.params.force_scale", d.Sim.Params.ForceScale)
	v.SetDefault("sim.params.max_speed", d.Sim.Params.MaxSpeed)

	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
	v.SetDefault("logger.service_name", d.Logger.ServiceName)
	v.SetDefault("logger.add_source", d.Logger.AddSource)
	v.SetDefault("logger.log_file", d.Logger.LogFile)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)
	v.SetDefault("logger.compress", d.Logger.Compress)
}
