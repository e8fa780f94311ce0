package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravfield/internal/field"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gravfield.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 260, cfg.Field.Cols())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
field:
  world_width: 800
  mapping: scaled
  params:
    gravity: 250
sim:
  seed: 9
  params:
    probes: 12
logger:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Field.WorldWidth)
	assert.Equal(t, 1000, cfg.Field.WorldHeight)
	assert.Equal(t, field.MappingScaled, cfg.Field.Mapping)
	assert.Equal(t, 250, cfg.Field.Params.Gravity)
	assert.Equal(t, 10, cfg.Field.Params.EdgeDist)
	assert.Equal(t, int64(9), cfg.Sim.Seed)
	assert.Equal(t, 12, cfg.Sim.Params.Probes)
	assert.Equal(t, 4, cfg.Sim.Params.Attractors)
	assert.Equal(t, "debug", cfg.Logger.Level)

	g := cfg.Gravity()
	assert.Equal(t, cfg.Field, g.Field)
	assert.Equal(t, int64(9), g.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GRAVFIELD_FIELD_PARAMS_EDGE_DIST", "4")
	t.Setenv("GRAVFIELD_SIM_PARAMS_ATTRACTORS", "2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Field.Params.EdgeDist)
	assert.Equal(t, 2, cfg.Sim.Params.Attractors)
}

func TestLoadRejectsInvalidField(t *testing.T) {
	path := writeFile(t, "field:\n  resolution: 0\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, field.ErrInvalidConfig))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
