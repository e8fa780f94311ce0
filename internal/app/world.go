package app

import "gravfield/internal/core"

// extentProvider is implemented by sims whose world units differ from cells.
type extentProvider interface {
	Extent() core.Size
}

// cellToWorld converts a display cell into world units for sims that report a
// world extent; otherwise cells and world units coincide.
func cellToWorld(sim core.Sim, gx, gy int) core.Point {
	p, ok := sim.(extentProvider)
	size := sim.Size()
	if !ok || size.W == 0 || size.H == 0 {
		return core.Point{X: gx, Y: gy}
	}
	ext := p.Extent()
	return core.Point{X: gx * ext.W / size.W, Y: gy * ext.H / size.H}
}
