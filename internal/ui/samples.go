package ui

import (
	"math"

	"gravfield/internal/core"
	"gravfield/internal/field"
)

// fieldProvider is implemented by sims that expose a force field.
type fieldProvider interface {
	Field() *field.Field
}

// forceSample is one arrow anchor: the cell it reads and its screen centre.
type forceSample struct {
	gx, gy int
	sx, sy float64
}

// arrow is a force sample resolved to a screen-space direction and strength.
type arrow struct {
	nx, ny   float64
	strength float64 // in [0, 1]
}

// sampleGrid spreads anchors every spacing cells, centred on the grid.
func sampleGrid(size core.Size, spacing, scale int) []forceSample {
	if size.W <= 0 || size.H <= 0 || spacing <= 0 {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	countX := (size.W + spacing - 1) / spacing
	countY := (size.H + spacing - 1) / spacing
	startX := max(0, (size.W-1-(countX-1)*spacing)/2)
	startY := max(0, (size.H-1-(countY-1)*spacing)/2)

	samples := make([]forceSample, 0, countX*countY)
	for yi := 0; yi < countY; yi++ {
		gy := min(startY+yi*spacing, size.H-1)
		for xi := 0; xi < countX; xi++ {
			gx := min(startX+xi*spacing, size.W-1)
			samples = append(samples, forceSample{
				gx: gx,
				gy: gy,
				sx: (float64(gx) + 0.5) * float64(scale),
				sy: (float64(gy) + 0.5) * float64(scale),
			})
		}
	}
	return samples
}

// arrowFor turns a force pair into a unit direction plus a strength on a
// square-root scale relative to full int16 range. ok is false for a calm cell.
func arrowFor(fx, fy int16) (a arrow, ok bool) {
	x, y := float64(fx), float64(fy)
	mag := math.Hypot(x, y)
	if mag == 0 {
		return arrow{}, false
	}
	s := math.Sqrt(mag / math.MaxInt16)
	if s > 1 {
		s = 1
	}
	return arrow{nx: x / mag, ny: y / mag, strength: s}, true
}
