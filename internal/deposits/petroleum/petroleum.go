// Package petroleum generates synthetic petroleum reservoir point clouds.
// Each system type places a number of reservoirs in the basin; every
// reservoir draws a trap structure that shapes its points and scales its
// yield. Clouds are repeatable: each system type draws from its own
// deposit-local random stream.
package petroleum

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/geo/r3"

	"depositlab/internal/core"
	pcore "depositlab/pkg/core"
	"depositlab/pkg/pointcloud"
)

// reservoirClass fixes the burial depth and thickness ranges of one
// petroleum system type.
type reservoirClass struct {
	depositType  core.DepositType
	depthMin     float64
	depthMax     float64
	thicknessMin float64
	thicknessMax float64
}

var classes = []reservoirClass{
	{
		depositType:  core.DepositType{Name: "Oil", Color: color.RGBA{R: 25, G: 20, B: 20, A: 255}},
		depthMin:     -3000,
		depthMax:     -1500,
		thicknessMin: 50,
		thicknessMax: 200,
	},
	{
		depositType:  core.DepositType{Name: "Natural Gas", Color: color.RGBA{R: 220, G: 20, B: 60, A: 255}},
		depthMin:     -2500,
		depthMax:     -800,
		thicknessMin: 30,
		thicknessMax: 150,
	},
	{
		depositType:  core.DepositType{Name: "Oil Shale", Color: color.RGBA{R: 85, G: 107, B: 47, A: 255}},
		depthMin:     -4000,
		depthMax:     -2000,
		thicknessMin: 100,
		thicknessMax: 500,
	},
	{
		depositType:  core.DepositType{Name: "Gas Hydrates", Color: color.RGBA{R: 173, G: 216, B: 230, A: 255}},
		depthMin:     -1000,
		depthMax:     -200,
		thicknessMin: 20,
		thicknessMax: 100,
	},
}

// Types lists the petroleum systems this source generates, in display order.
var Types = func() []core.DepositType {
	out := make([]core.DepositType, len(classes))
	for i, c := range classes {
		out[i] = c.depositType
	}
	return out
}()

// Generator produces petroleum reservoir point clouds.
type Generator struct {
	cfg Config
}

// New returns a petroleum generator, rejecting invalid configurations
// before any generation can run.
func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Name returns the source identifier.
func (g *Generator) Name() string { return "petroleum" }

// Types lists the deposit types this source generates.
func (g *Generator) Types() []core.DepositType {
	out := make([]core.DepositType, len(Types))
	copy(out, Types)
	return out
}

// Config returns a copy of the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// reservoirPlan captures the structural draws for one reservoir. The plan
// is replayed identically by Generate and Survey, so reports always agree
// with the emitted cloud.
type reservoirPlan struct {
	cx, cy    float64
	depthBase float64
	thickness float64
	trap      Trap
	points    int
}

// planReservoir draws the structure of the next reservoir from the stream.
// The draw order is part of the determinism contract.
func (g *Generator) planReservoir(rng *pcore.RNG, class reservoirClass) reservoirPlan {
	half := g.cfg.BasinSize / 2
	p := reservoirPlan{
		cx:        rng.Uniform(-half, half),
		cy:        rng.Uniform(-half, half),
		depthBase: rng.Uniform(class.depthMin, class.depthMax),
		thickness: rng.Uniform(class.thicknessMin, class.thicknessMax),
	}
	p.trap = Trap(rng.IntN(trapCount))
	p.points = int(float64(p.trap.BasePoints()) * g.cfg.TrapEfficiency)
	return p
}

// Generate builds the point cloud for one petroleum system: reservoirs are
// planned and filled in order and their points concatenate into a single
// cloud. Total size is the sum of floor(base yield x efficiency) over the
// reservoirs, so it depends on the trap draws but is fixed for a seed.
func (g *Generator) Generate(t core.DepositType) (*pointcloud.Cloud, error) {
	class, err := classFor(t.Name)
	if err != nil {
		return nil, err
	}
	rng := pcore.NewRNG(core.DepositSeed(g.cfg.Seed, t.Name))

	cloud := pointcloud.New()
	for r := 0; r < g.cfg.ReservoirCount; r++ {
		plan := g.planReservoir(rng, class)
		g.fillReservoir(rng, cloud, plan)
	}
	return cloud, nil
}

func (g *Generator) fillReservoir(rng *pcore.RNG, cloud *pointcloud.Cloud, p reservoirPlan) {
	switch p.trap {
	case TrapAnticline:
		g.anticline(rng, cloud, p)
	case TrapFault:
		g.faultTrap(rng, cloud, p)
	case TrapStratigraphic:
		g.stratigraphic(rng, cloud, p)
	}
}

// anticline domes points over the basin center: elevation decays
// exponentially with radial distance, so the apex stays below
// depthBase + thickness before noise.
func (g *Generator) anticline(rng *pcore.RNG, cloud *pointcloud.Cloud, p reservoirPlan) {
	radialMean := g.cfg.BasinSize / 8
	decay := g.cfg.BasinSize / 6
	for i := 0; i < p.points; i++ {
		rd := rng.Exp(radialMean)
		azim := rng.Uniform(0, 2*math.Pi)
		dome := p.depthBase + p.thickness*math.Exp(-rd/decay)
		cloud.Append(r3.Vector{
			X: p.cx + rd*math.Cos(azim),
			Y: p.cy + rd*math.Sin(azim),
			Z: dome + rng.Normal(0, p.thickness/10),
		})
	}
}

// faultTrap banks points against a fault plane: exponential falloff on one
// side of the fault normal, uniform spread along the strike.
func (g *Generator) faultTrap(rng *pcore.RNG, cloud *pointcloud.Cloud, p reservoirPlan) {
	strike := rng.Uniform(0, 2*math.Pi)
	strikeDir := [2]float64{math.Cos(strike), math.Sin(strike)}
	normalDir := [2]float64{-math.Sin(strike), math.Cos(strike)}
	for i := 0; i < p.points; i++ {
		dn := rng.Exp(g.cfg.BasinSize / 10)
		along := rng.Uniform(-g.cfg.BasinSize/4, g.cfg.BasinSize/4)
		cloud.Append(r3.Vector{
			X: p.cx + normalDir[0]*dn + strikeDir[0]*along,
			Y: p.cy + normalDir[1]*dn + strikeDir[1]*along,
			Z: rng.Uniform(p.depthBase, p.depthBase+p.thickness),
		})
	}
}

// stratigraphic scatters points normally around the reservoir center with
// uniform depth within the unit.
func (g *Generator) stratigraphic(rng *pcore.RNG, cloud *pointcloud.Cloud, p reservoirPlan) {
	std := g.cfg.BasinSize / 6
	for i := 0; i < p.points; i++ {
		cloud.Append(r3.Vector{
			X: p.cx + rng.Normal(0, std),
			Y: p.cy + rng.Normal(0, std),
			Z: rng.Uniform(p.depthBase, p.depthBase+p.thickness),
		})
	}
}

func classFor(name string) (reservoirClass, error) {
	for _, c := range classes {
		if c.depositType.Name == name {
			return c, nil
		}
	}
	return reservoirClass{}, fmt.Errorf("petroleum: unknown deposit type %q", name)
}

// ParameterControls lists the HUD-adjustable generation parameters.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "basin_size", Label: "Basin size", Type: core.ParamTypeFloat, Step: 5, Min: 5, Max: 500, HasMin: true, HasMax: true},
		{Key: "reservoirs", Label: "Reservoirs", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 20, HasMin: true, HasMax: true},
		{Key: "trap_efficiency", Label: "Trap efficiency", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 2, HasMin: true, HasMax: true},
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
	}
}

// SetIntParameter updates integer parameters from the HUD, clamping to the
// control bounds.
func (g *Generator) SetIntParameter(key string, value int) bool {
	switch key {
	case "reservoirs":
		if value < 0 {
			value = 0
		}
		if value > 20 {
			value = 20
		}
		g.cfg.ReservoirCount = value
	case "seed":
		g.cfg.Seed = int64(value)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates float parameters from the HUD, clamping to the
// control bounds.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "basin_size":
		g.cfg.BasinSize = clampFloat(value, 5, 500)
	case "trap_efficiency":
		g.cfg.TrapEfficiency = clampFloat(value, 0.05, 2)
	default:
		return false
	}
	return true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	core.Register("petroleum", func(cfg map[string]string) (core.Source, error) {
		return New(FromMap(cfg))
	})
}
