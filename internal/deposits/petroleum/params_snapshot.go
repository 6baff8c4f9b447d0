package petroleum

import (
	"strconv"

	"depositlab/internal/core"
)

func (g *Generator) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Basin",
				Params: []core.Parameter{
					{Key: "basin_size", Label: "Basin size", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(g.cfg.BasinSize, 'f', -1, 64)},
					{Key: "reservoirs", Label: "Reservoirs", Type: core.ParamTypeInt, Value: strconv.Itoa(g.cfg.ReservoirCount)},
					{Key: "trap_efficiency", Label: "Trap efficiency", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(g.cfg.TrapEfficiency, 'f', -1, 64)},
					{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(g.cfg.Seed, 10)},
				},
			},
		},
	}
}
