// Package field models the ambient force of a set of static attractors plus a
// fixed boundary repulsion, sampled on a coarse grid.
//
// A Field holds two int16 layers, one per axis. Fields are immutable: adding
// an attractor allocates a new Field whose layers are the parent's plus the
// attractor's per-axis pull, so any number of goroutines may read a Field, or
// derive new Fields from it, without locking.
//
// The pull along an axis depends only on the coordinate along that axis: an
// attractor's x pull is the same in every row and its y pull is the same in
// every column. Building a Field therefore costs one contribution per column
// and one per row rather than one per cell.
package field

import (
	"fmt"
	"slices"

	"gravfield/internal/core"
)

// Attractor is a static point source.
type Attractor struct {
	// Position is in world units; the layout mapping turns it into a cell.
	Position core.Point
	// Mass is expected to be non-negative. It is not validated.
	Mass int
}

// ConsistencyError reports that a layer sweep wrote a different number of
// cells than the layer holds. It signals a construction defect and is raised
// with panic, never returned.
type ConsistencyError struct {
	Axis    string
	Written int
	Want    int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("field: %s layer sweep wrote %d cells, want %d", e.Axis, e.Written, e.Want)
}

// Field is one immutable snapshot of the per-axis force on every grid cell.
type Field struct {
	layout     *Layout
	x, y       []int16
	attractors int
}

// Contribution returns the signed pull a source of the given mass at source
// exerts on position along one axis: g*mass/distance² with truncating
// division, positive when the source lies at a higher coordinate. A source at
// the position itself contributes 0.
func Contribution(position, source, mass, g int) int {
	d := position - source
	if d == 0 {
		return 0
	}
	pull := g * mass / (d * d)
	if position < source {
		return pull
	}
	return -pull
}

// FromLayers returns a Field holding copies of the provided layers. Inputs
// shorter than Cells leave the remaining cells at zero.
func (l *Layout) FromLayers(x, y []int16) *Field {
	f := l.alloc(0)
	copy(f.x, x)
	copy(f.y, y)
	return f
}

func (l *Layout) alloc(attractors int) *Field {
	n := l.Cells()
	return &Field{
		layout:     l,
		x:          make([]int16, n),
		y:          make([]int16, n),
		attractors: attractors,
	}
}

// AddAttractor returns a new Field with a's pull folded into f's layers. f is
// left untouched.
func (f *Field) AddAttractor(a Attractor) *Field {
	return f.add(a, f.layout.cols, f.layout.rows)
}

// add sweeps xCols columns for the x layer and yRows rows for the y layer.
// AddAttractor always passes the layout's dimensions; the bounds are separate
// so the cell-count check can be exercised.
func (f *Field) add(a Attractor, xCols, yRows int) *Field {
	l := f.layout
	n := l.Cells()
	next := l.alloc(f.attractors + 1)

	ax := l.mapping.GridX(a.Position.X)
	written := sweep(next.x, f.x, xCols, l.rows,
		func(col, row int) int { return l.Index(col, row) },
		func(col int) int { return l.Contribution(col, ax, a.Mass) })
	if written != n {
		panic(&ConsistencyError{Axis: "x", Written: written, Want: n})
	}

	ay := l.mapping.GridY(a.Position.Y)
	written = sweep(next.y, f.y, yRows, l.cols,
		func(row, col int) int { return l.Index(col, row) },
		func(row int) int { return l.Contribution(row, ay, a.Mass) })
	if written != n {
		panic(&ConsistencyError{Axis: "y", Written: written, Want: n})
	}
	return next
}

// sweep computes pull once per outer line and writes parent+pull into every
// cell of that line. It returns the number of cells written.
func sweep(dst, parent []int16, outer, inner int, at func(o, i int) int, pull func(o int) int) int {
	written := 0
	for o := 0; o < outer; o++ {
		g := pull(o)
		for i := 0; i < inner; i++ {
			idx := at(o, i)
			dst[idx] = int16(int(parent[idx]) + g)
			written++
		}
	}
	return written
}

// Layout returns the grid description shared by f and every Field derived
// from it.
func (f *Field) Layout() *Layout { return f.layout }

// Attractors returns how many attractors have been folded into f.
func (f *Field) Attractors() int { return f.attractors }

// At returns the x and y force at cell (gx, gy). The cell must lie inside the
// grid.
func (f *Field) At(gx, gy int) (int16, int16) {
	i := f.layout.Index(gx, gy)
	return f.x[i], f.y[i]
}

// ForceAt returns the force at the cell containing world position p. ok is
// false when p maps outside the grid.
func (f *Field) ForceAt(p core.Point) (fx, fy int16, ok bool) {
	gx, gy := f.layout.mapping.GridX(p.X), f.layout.mapping.GridY(p.Y)
	if !f.layout.Contains(gx, gy) {
		return 0, 0, false
	}
	fx, fy = f.At(gx, gy)
	return fx, fy, true
}

// XLayer returns a copy of the x-force layer.
func (f *Field) XLayer() []int16 { return slices.Clone(f.x) }

// YLayer returns a copy of the y-force layer.
func (f *Field) YLayer() []int16 { return slices.Clone(f.y) }
