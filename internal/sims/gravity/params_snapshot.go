package gravity

import (
	"strconv"

	"gravfield/internal/core"
)

// Parameters describes the field constants and simulation tunables.
func (w *World) Parameters() core.ParameterSnapshot {
	fc := w.cfg.Field
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("world_width", "World width", fc.WorldWidth),
				intParam("world_height", "World height", fc.WorldHeight),
				intParam("resolution", "Resolution", fc.Resolution),
				intParam("cols", "Columns", w.layout.Cols()),
				intParam("rows", "Rows", w.layout.Rows()),
				stringParam("mapping", "Mapping", fc.Mapping),
			},
		},
		{
			Name: "Forces",
			Params: []core.Parameter{
				intParam("gravity", "Gravitational constant", fc.Params.Gravity),
				intParam("edge_strength", "Edge repulsion step", fc.Params.EdgeStrength),
				intParam("edge_dist", "Edge band width", fc.Params.EdgeDist),
			},
		},
		{
			Name: "Sources",
			Params: []core.Parameter{
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("attractors", "Attractors placed", w.current.Attractors()),
				intParam("mass_min", "Mass min", params.MassMin),
				intParam("mass_max", "Mass max", params.MassMax),
			},
		},
		{
			Name: "Probes",
			Params: []core.Parameter{
				intParam("probes", "Probe count", len(w.probes)),
				intParam("force_scale", "Force scale", params.ForceScale),
				intParam("max_speed", "Max speed", params.MaxSpeed),
				intParam("steps", "Steps", w.steps),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
