package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravfield/internal/core"
)

type fakeSim struct {
	size   core.Size
	extent core.Size
}

func (f *fakeSim) Name() string      { return "fake" }
func (f *fakeSim) Size() core.Size   { return f.size }
func (f *fakeSim) Reset(int64)       {}
func (f *fakeSim) Step()             {}
func (f *fakeSim) Cells() []uint8    { return nil }
func (f *fakeSim) Extent() core.Size { return f.extent }

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("gravfield", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "2", "-mass", "55", "-panel", "0", "-v"}))

	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 55, cfg.Mass)
	assert.Zero(t, cfg.PanelWidth)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "gravity", cfg.Sim)
}

func TestCellToWorld(t *testing.T) {
	sim := &fakeSim{size: core.Size{W: 260, H: 100}, extent: core.Size{W: 2600, H: 1000}}
	assert.Equal(t, core.Point{X: 120, Y: 70}, cellToWorld(sim, 12, 7))

	sim.extent = sim.size
	assert.Equal(t, core.Point{X: 12, Y: 7}, cellToWorld(sim, 12, 7))
}
