package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravfield/internal/core"
)

func TestSampleGridCoversAndCentres(t *testing.T) {
	samples := sampleGrid(core.Size{W: 25, H: 10}, 10, 2)
	require.Len(t, samples, 3*1)
	assert.Equal(t, 2, samples[0].gx)
	assert.Equal(t, 4, samples[0].gy)
	assert.Equal(t, 22, samples[2].gx)
	assert.InDelta(t, 45.0, samples[2].sx, 1e-9)
	assert.InDelta(t, 9.0, samples[0].sy, 1e-9)

	for _, s := range sampleGrid(core.Size{W: 260, H: 100}, 12, 3) {
		assert.True(t, s.gx >= 0 && s.gx < 260 && s.gy >= 0 && s.gy < 100)
	}
	assert.Nil(t, sampleGrid(core.Size{}, 10, 1))
}

func TestArrowFor(t *testing.T) {
	_, ok := arrowFor(0, 0)
	assert.False(t, ok)

	a, ok := arrowFor(3, -4)
	require.True(t, ok)
	assert.InDelta(t, 0.6, a.nx, 1e-9)
	assert.InDelta(t, -0.8, a.ny, 1e-9)
	assert.InDelta(t, math.Sqrt(5.0/math.MaxInt16), a.strength, 1e-9)

	a, _ = arrowFor(-32768, -32768)
	assert.Equal(t, 1.0, a.strength)
}

func TestSnapshotLines(t *testing.T) {
	s := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Forces",
		Params: []core.Parameter{{Key: "gravity", Label: "Gravitational constant", Value: "1000"}},
	}}}
	assert.Equal(t, []string{"gravity", "", "[Forces]", "  Gravitational constant: 1000"}, snapshotLines("gravity", s))
}
