package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer position in world units.
type Point struct {
	X int
	Y int
}

// Sim defines the minimal contract a simulation must implement to be driven by
// the viewer or the headless runner.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// AttractorPlacer is implemented by sims that accept new point sources at
// runtime, e.g. from a mouse click in the viewer.
type AttractorPlacer interface {
	PlaceAttractor(at Point, mass int)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
