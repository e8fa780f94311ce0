package field

import "gravfield/internal/core"

// Extent returns the world area that maps onto the grid under the configured
// mapping. With the identity mapping only the first Cols x Rows world units
// land on cells.
func (c Config) Extent() core.Size {
	if c.Mapping == MappingScaled {
		return core.Size{W: c.Cols() * c.Resolution, H: c.Rows() * c.Resolution}
	}
	return core.Size{W: c.Cols(), H: c.Rows()}
}
