package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last entry. When the palette is empty
// the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// GrayPalette returns an n-entry ramp from black to white, used for sims that
// do not provide their own palette.
func GrayPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	p := make([]color.RGBA, n)
	for i := range p {
		v := uint8(255)
		if n > 1 {
			v = uint8(i * 255 / (n - 1))
		}
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return p
}
