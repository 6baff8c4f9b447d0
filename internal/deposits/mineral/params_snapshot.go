package mineral

import (
	"strconv"

	"depositlab/internal/core"
)

func (g *Generator) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name:    "Generation",
				Summary: g.cfg.Mode.Label(),
				Params: []core.Parameter{
					{Key: "count", Label: "Points", Type: core.ParamTypeInt, Value: strconv.Itoa(g.cfg.Count)},
					{Key: "mode", Label: "Mode", Type: core.ParamTypeInt, Value: strconv.Itoa(int(g.cfg.Mode)), Description: g.cfg.Mode.Label()},
					{Key: "complexity", Label: "Complexity", Type: core.ParamTypeInt, Value: strconv.Itoa(g.cfg.Complexity)},
					{Key: "depth_factor", Label: "Depth factor", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(g.cfg.DepthFactor, 'f', -1, 64)},
					{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(g.cfg.Seed, 10)},
				},
			},
		},
	}
}
