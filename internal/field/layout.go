package field

// Mapping converts world-space position components into grid coordinates. It
// performs no bounds checks; callers place sources inside the world.
type Mapping interface {
	GridX(p int) int
	GridY(p int) int
}

// Identity treats world positions as grid coordinates.
type Identity struct{}

func (Identity) GridX(p int) int { return p }
func (Identity) GridY(p int) int { return p }

// Scaled maps world positions onto the grid by dividing by Resolution.
type Scaled struct {
	Resolution int
}

func (s Scaled) GridX(p int) int { return p / s.Resolution }
func (s Scaled) GridY(p int) int { return p / s.Resolution }

// Layout is the immutable description of a grid: its dimensions, the force
// constants and the position mapping. Every Field built from a Layout shares
// it read-only; the force layers themselves are never shared.
type Layout struct {
	cols, rows int
	params     Params
	mapping    Mapping
}

// NewLayout builds a Layout for cfg. The config is expected to be valid; see
// Config.Validate.
func NewLayout(cfg Config) *Layout {
	var m Mapping = Identity{}
	if cfg.Mapping == MappingScaled {
		m = Scaled{Resolution: cfg.Resolution}
	}
	return NewLayoutWithMapping(cfg, m)
}

// NewLayoutWithMapping builds a Layout that uses a custom position mapping.
func NewLayoutWithMapping(cfg Config, m Mapping) *Layout {
	return &Layout{
		cols:    cfg.Cols(),
		rows:    cfg.Rows(),
		params:  cfg.Params,
		mapping: m,
	}
}

// Cols returns the grid width in cells.
func (l *Layout) Cols() int { return l.cols }

// Rows returns the grid height in cells.
func (l *Layout) Rows() int { return l.rows }

// Cells returns the number of cells in each force layer.
func (l *Layout) Cells() int { return l.cols * l.rows }

// Params returns the force constants.
func (l *Layout) Params() Params { return l.params }

// Mapping returns the position mapping in use.
func (l *Layout) Mapping() Mapping { return l.mapping }

// Index returns the layer offset of cell (gx, gy). Columns are contiguous: x
// varies slower, y faster.
func (l *Layout) Index(gx, gy int) int { return gx*l.rows + gy }

// Contains reports whether (gx, gy) addresses a cell of the grid.
func (l *Layout) Contains(gx, gy int) bool {
	return gx >= 0 && gx < l.cols && gy >= 0 && gy < l.rows
}

// Contribution is the signed pull a source of the given mass exerts along one
// axis, using the layout's gravitational constant.
func (l *Layout) Contribution(position, source, mass int) int {
	return Contribution(position, source, mass, l.params.Gravity)
}
