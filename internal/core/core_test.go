package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteGridSet(t *testing.T) {
	g := NewByteGrid(4, 3)
	require.Len(t, g.Cells(), 12)

	g.Set(3, 2, 7)
	g.Set(4, 2, 9)
	assert.Equal(t, uint8(7), g.Cells()[g.Index(3, 2)])
	assert.False(t, g.Contains(4, 2))

	g.Clear()
	for _, c := range g.Cells() {
		assert.Zero(t, c)
	}
}

func TestRNGIntRangeDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		va := a.IntRange(10, 20)
		require.Equal(t, va, b.IntRange(10, 20))
		require.GreaterOrEqual(t, va, 10)
		require.LessOrEqual(t, va, 20)
	}
	assert.Equal(t, 5, a.IntRange(5, 5))
	assert.Equal(t, 5, a.IntRange(5, 1))
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	// The first call primes the clock and releases the initial step.
	assert.Equal(t, 1, fs.Steps(4))

	clock = clock.Add(250 * time.Millisecond)
	assert.Equal(t, 2, fs.Steps(4))

	clock = clock.Add(10 * time.Second)
	assert.Equal(t, 4, fs.Steps(4))
	assert.Equal(t, 0, fs.Steps(4))
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Field", Params: []Parameter{{Key: "gravity", Type: ParamTypeInt, Value: "1000"}}},
	}}
	p, ok := s.Lookup("gravity")
	require.True(t, ok)
	assert.Equal(t, "1000", p.Value)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	assert.Len(t, Sims(), before)
}
