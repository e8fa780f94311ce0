package field

// Initial returns the base Field: no attractors, only the boundary repulsion
// ramp along each edge. Inside a band of EdgeDist cells the push away from the
// edge is EdgeStrength*(EdgeDist-k) at band index k.
//
// The far edge mirrors band index k onto column Cols-k (row Rows-k for the y
// layer), not Cols-1-k: the outermost far cell gets the second-strongest push
// and k=0 lands outside the grid and is dropped. See DESIGN.md before
// changing it.
func (l *Layout) Initial() *Field {
	f := l.alloc(0)
	band := l.params.EdgeDist
	for k := 0; k < band; k++ {
		strength := l.params.EdgeStrength * (band - k)
		for row := 0; row < l.rows; row++ {
			f.store(f.x, k, row, strength)
			f.store(f.x, l.cols-k, row, -strength)
		}
	}
	for k := 0; k < band; k++ {
		strength := l.params.EdgeStrength * (band - k)
		for col := 0; col < l.cols; col++ {
			f.store(f.y, col, k, strength)
			f.store(f.y, col, l.rows-k, -strength)
		}
	}
	return f
}

// store writes v into layer at (gx, gy), truncated to int16. Cells outside the
// grid are skipped. Only used while a Field is being built.
func (f *Field) store(layer []int16, gx, gy, v int) {
	if !f.layout.Contains(gx, gy) {
		return
	}
	layer[f.layout.Index(gx, gy)] = int16(v)
}
