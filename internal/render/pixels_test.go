package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 255}}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	assert.Equal(t, []byte{1, 2, 3, 4, 9, 8, 7, 255, 9, 8, 7, 255}, buf)
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{5, 5, 5, 5, 5, 5, 5, 5}
	fillPaletteRGBA(buf, []uint8{1, 2}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}

func TestGrayPalette(t *testing.T) {
	p := GrayPalette(3)
	assert.Equal(t, color.RGBA{A: 255}, p[0])
	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 127, A: 255}, p[1])
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, p[2])
	assert.Equal(t, []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}, GrayPalette(1))
	assert.Nil(t, GrayPalette(0))
}
