package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialNearEdgeRamp(t *testing.T) {
	l := NewLayout(DefaultConfig())
	f := l.Initial()
	require.Equal(t, 260, l.Cols())
	require.Equal(t, 100, l.Rows())
	require.Zero(t, f.Attractors())

	for gy := 0; gy < l.Rows(); gy++ {
		x0, _ := f.At(0, gy)
		x9, _ := f.At(9, gy)
		assert.Equal(t, int16(10000), x0, "row %d", gy)
		assert.Equal(t, int16(1000), x9, "row %d", gy)
		for gx := 10; gx <= l.Cols()-10; gx++ {
			x, _ := f.At(gx, gy)
			require.Zero(t, x, "cell (%d,%d) lies outside both bands", gx, gy)
		}
	}

	for gx := 0; gx < l.Cols(); gx++ {
		_, y0 := f.At(gx, 0)
		_, y4 := f.At(gx, 4)
		assert.Equal(t, int16(10000), y0, "col %d", gx)
		assert.Equal(t, int16(6000), y4, "col %d", gx)
		_, mid := f.At(gx, 50)
		assert.Zero(t, mid)
	}
}

func TestInitialFarEdgeUsesMirroredIndex(t *testing.T) {
	l := NewLayout(DefaultConfig())
	f := l.Initial()
	cols, rows := l.Cols(), l.Rows()

	// Band index k lands on column cols-k, so the last column holds k=1.
	for k := 1; k < 10; k++ {
		x, _ := f.At(cols-k, 7)
		assert.Equal(t, int16(-1000*(10-k)), x, "k=%d", k)

		_, y := f.At(7, rows-k)
		assert.Equal(t, int16(-1000*(10-k)), y, "k=%d", k)
	}
	x, _ := f.At(cols-10, 7)
	assert.Zero(t, x)
	_, y := f.At(7, rows-10)
	assert.Zero(t, y)
}

func TestInitialLayersAreIndependent(t *testing.T) {
	l := NewLayout(DefaultConfig())
	f := l.Initial()

	// Deep inside the x band but mid-height: only x carries force.
	x, y := f.At(3, 50)
	assert.Equal(t, int16(7000), x)
	assert.Zero(t, y)

	// Corner cells carry both ramps.
	x, y = f.At(0, 0)
	assert.Equal(t, int16(10000), x)
	assert.Equal(t, int16(10000), y)
}

func TestInitialWithoutBand(t *testing.T) {
	cfg := smallConfig()
	cfg.Params.EdgeDist = 0
	f := NewLayout(cfg).Initial()
	for _, v := range f.XLayer() {
		require.Zero(t, v)
	}
	for _, v := range f.YLayer() {
		require.Zero(t, v)
	}
}
