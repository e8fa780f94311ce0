package gravity

import (
	"go.uber.org/zap"

	"gravfield/internal/core"
	"gravfield/internal/field"
)

// subunits is the fixed-point scale of probe positions and velocities.
const subunits = 16

type probe struct {
	x, y   int
	vx, vy int
}

// World hosts a gravity field and a swarm of probes that drift through it.
// The base field is built once in NewWithConfig; Reset and PlaceAttractor
// replace the current field with a derived one, never mutating a field that
// callers may still hold.
type World struct {
	cfg Config

	layout  *field.Layout
	base    *field.Field
	current *field.Field
	extent  core.Size

	attractors []field.Attractor
	probes     []probe
	steps      int

	bands   []uint8
	display *core.ByteGrid

	rng *core.RNG
	log *zap.Logger
}

// New returns a gravity simulation with default settings.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a gravity world configured from the provided options.
// The field config must be valid; see field.Config.Validate.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.Sanitize()
	layout := field.NewLayout(cfg.Field)
	base := layout.Initial()
	w := &World{
		cfg:     cfg,
		layout:  layout,
		base:    base,
		current: base,
		extent:  cfg.Field.Extent(),
		display: core.NewByteGrid(layout.Cols(), layout.Rows()),
		rng:     core.NewRNG(cfg.Seed),
		log:     zap.NewNop(),
	}
	w.refreshBands()
	w.render()
	return w
}

// SetLogger routes simulation events to l. A nil logger disables logging.
func (w *World) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	w.log = l.Named("gravity")
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "gravity" }

// Size reports the display grid dimensions, one pixel per field cell.
func (w *World) Size() core.Size { return core.Size{W: w.layout.Cols(), H: w.layout.Rows()} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Field returns the current field. The returned value is immutable and stays
// valid after later updates.
func (w *World) Field() *field.Field { return w.current }

// Base returns the boundary-only field every reset starts from.
func (w *World) Base() *field.Field { return w.base }

// Extent returns the world area that maps onto the field grid.
func (w *World) Extent() core.Size { return w.extent }

// Steps returns the number of steps taken since the last Reset.
func (w *World) Steps() int { return w.steps }

// Attractors returns the sources folded into the current field, in placement
// order.
func (w *World) Attractors() []field.Attractor {
	return append([]field.Attractor(nil), w.attractors...)
}

// Probes returns probe positions in world units.
func (w *World) Probes() []core.Point {
	out := make([]core.Point, len(w.probes))
	for i, p := range w.probes {
		out[i] = core.Point{X: p.x / subunits, Y: p.y / subunits}
	}
	return out
}

// Reset restores the base field, places fresh attractors and scatters the
// probes using deterministic randomness.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.current = w.base
	w.attractors = w.attractors[:0]
	w.steps = 0

	band := w.cfg.Field.Params.EdgeDist
	cols, rows := w.layout.Cols(), w.layout.Rows()
	for i := 0; i < w.cfg.Params.Attractors; i++ {
		gx := w.rng.IntRange(band, cols-1-band)
		gy := w.rng.IntRange(band, rows-1-band)
		mass := w.rng.IntRange(w.cfg.Params.MassMin, w.cfg.Params.MassMax)
		w.add(w.cellToWorld(gx, gy), mass)
	}

	w.probes = make([]probe, w.cfg.Params.Probes)
	for i := range w.probes {
		w.probes[i] = probe{
			x: w.rng.IntRange(0, w.extent.W*subunits-1),
			y: w.rng.IntRange(0, w.extent.H*subunits-1),
		}
	}

	w.refreshBands()
	w.render()
	w.log.Info("world reset",
		zap.Int64("seed", effective),
		zap.Int("attractors", len(w.attractors)),
		zap.Int("probes", len(w.probes)))
}

// PlaceAttractor folds a new source at world position at into the current
// field. Calls must not race with each other or with Step.
func (w *World) PlaceAttractor(at core.Point, mass int) {
	w.add(at, mass)
	w.refreshBands()
	w.render()
}

func (w *World) add(at core.Point, mass int) {
	a := field.Attractor{Position: at, Mass: mass}
	w.current = w.current.AddAttractor(a)
	w.attractors = append(w.attractors, a)
	w.log.Debug("attractor placed",
		zap.Int("x", at.X),
		zap.Int("y", at.Y),
		zap.Int("mass", mass),
		zap.Int("total", w.current.Attractors()))
}

// Step advances every probe by one tick: sample the force at its cell,
// accelerate, cap speed, move and stay inside the mapped world.
func (w *World) Step() {
	maxV := w.cfg.Params.MaxSpeed * subunits
	scale := w.cfg.Params.ForceScale
	maxX, maxY := w.extent.W*subunits-1, w.extent.H*subunits-1
	for i := range w.probes {
		p := &w.probes[i]
		fx, fy, ok := w.current.ForceAt(core.Point{X: p.x / subunits, Y: p.y / subunits})
		if ok {
			p.vx = clamp(p.vx+int(fx)/scale, -maxV, maxV)
			p.vy = clamp(p.vy+int(fy)/scale, -maxV, maxV)
		}
		p.x, p.vx = bounce(p.x+p.vx, p.vx, maxX)
		p.y, p.vy = bounce(p.y+p.vy, p.vy, maxY)
	}
	w.steps++
	w.render()
}

func (w *World) cellToWorld(gx, gy int) core.Point {
	return core.Point{
		X: gx * w.extent.W / w.layout.Cols(),
		Y: gy * w.extent.H / w.layout.Rows(),
	}
}

// bounce pins pos into [0, max] and stops motion along the axis on contact.
func bounce(pos, v, max int) (int, int) {
	if pos < 0 {
		return 0, 0
	}
	if pos > max {
		return max, 0
	}
	return pos, v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	core.Register("gravity", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
