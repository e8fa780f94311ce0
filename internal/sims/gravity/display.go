package gravity

import "image/color"

const (
	// Palette indices 0..bandCount-1 encode force magnitude bands.
	bandCount       = 8
	markerAttractor = bandCount
	markerProbe     = bandCount + 1
	paletteSize     = bandCount + 2
)

// bandThresholds are the lower bounds of bands 1..7 on |fx|+|fy|.
var bandThresholds = [bandCount - 1]int{1, 100, 400, 1000, 2500, 6000, 12000}

var gravityPalette = buildGravityPalette()

// Palette exposes the color palette used for rendering the gravity world.
func (w *World) Palette() []color.RGBA {
	return gravityPalette
}

func buildGravityPalette() []color.RGBA {
	palette := make([]color.RGBA, paletteSize)
	cold := color.RGBA{R: 8, G: 10, B: 28, A: 255}
	hot := color.RGBA{R: 120, G: 170, B: 255, A: 255}
	for i := 0; i < bandCount; i++ {
		palette[i] = lerp(cold, hot, i, bandCount-1)
	}
	palette[markerAttractor] = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	palette[markerProbe] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	return palette
}

func lerp(a, b color.RGBA, num, den int) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(int(x) + (int(y)-int(x))*num/den)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// bandFor buckets a force pair into a palette band.
func bandFor(fx, fy int16) uint8 {
	m := abs(int(fx)) + abs(int(fy))
	band := uint8(0)
	for _, t := range bandThresholds {
		if m < t {
			break
		}
		band++
	}
	return band
}

// refreshBands recomputes the per-cell magnitude bands. The bands only change
// when the current field does.
func (w *World) refreshBands() {
	cols, rows := w.layout.Cols(), w.layout.Rows()
	if len(w.bands) != cols*rows {
		w.bands = make([]uint8, cols*rows)
	}
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			fx, fy := w.current.At(gx, gy)
			w.bands[w.display.Index(gx, gy)] = bandFor(fx, fy)
		}
	}
}

// render composes bands and markers into the display buffer.
func (w *World) render() {
	copy(w.display.Cells(), w.bands)
	m := w.layout.Mapping()
	for _, a := range w.attractors {
		w.display.Set(m.GridX(a.Position.X), m.GridY(a.Position.Y), markerAttractor)
	}
	for _, p := range w.probes {
		w.display.Set(m.GridX(p.x/subunits), m.GridY(p.y/subunits), markerProbe)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
