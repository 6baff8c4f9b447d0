// Package mineral generates synthetic mineral deposit point clouds. Each
// deposit type is shaped by the configured formation mode and drawn from a
// deposit-local random stream, so clouds are repeatable and independent of
// one another.
package mineral

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/geo/r3"

	"depositlab/internal/core"
	pcore "depositlab/pkg/core"
	"depositlab/pkg/pointcloud"
)

// Types lists the minerals this source generates, in display order.
var Types = []core.DepositType{
	{Name: "Silver", Color: color.RGBA{R: 128, G: 128, B: 128, A: 255}},
	{Name: "Gold", Color: color.RGBA{R: 255, G: 215, B: 0, A: 255}},
	{Name: "Iron", Color: color.RGBA{R: 165, G: 42, B: 42, A: 255}},
	{Name: "Copper", Color: color.RGBA{R: 255, G: 165, B: 0, A: 255}},
	{Name: "Coal", Color: color.RGBA{R: 30, G: 30, B: 30, A: 255}},
}

// halfExtent is the half-width of the world frame deposit centers are
// drawn in.
const halfExtent = 50.0

// branchReserve is the trunk budget held back per allowed vein branch,
// the midpoint of the 5-15 step sub-walk range.
const branchReserve = 10

const (
	voxelGridSize = 30
	voxelScale    = 3.0
)

// Generator produces mineral deposit point clouds.
type Generator struct {
	cfg Config
}

// New returns a mineral generator, rejecting invalid configurations before
// any generation can run.
func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Name returns the source identifier.
func (g *Generator) Name() string { return "minerals" }

// Types lists the deposit types this source generates.
func (g *Generator) Types() []core.DepositType {
	out := make([]core.DepositType, len(Types))
	copy(out, Types)
	return out
}

// Config returns a copy of the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate builds the point cloud for one mineral. Every call derives a
// fresh deposit-local RNG, so results do not depend on call order. All
// modes yield exactly Count points except the voxel aggregate, which is
// bounded by grid occupancy.
func (g *Generator) Generate(t core.DepositType) (*pointcloud.Cloud, error) {
	if !knownType(t.Name) {
		return nil, fmt.Errorf("minerals: unknown deposit type %q", t.Name)
	}
	rng := pcore.NewRNG(core.DepositSeed(g.cfg.Seed, t.Name))

	var cloud *pointcloud.Cloud
	switch g.cfg.Mode {
	case ModeOrebody:
		cloud = g.orebody(rng)
	case ModeVeins:
		cloud = g.veins(rng)
	case ModeLayers:
		cloud = g.layers(rng)
	case ModeContact:
		cloud = g.contact(rng)
	case ModePlacer:
		cloud = g.placer(rng)
	case ModeBlobs:
		cloud = g.blobs(rng)
	case ModeVoxel:
		cloud = g.voxel(rng)
	default:
		return nil, fmt.Errorf("minerals: unknown formation mode %d", int(g.cfg.Mode))
	}

	cloud.ScaleElevation(g.cfg.DepthFactor)
	return cloud, nil
}

func knownType(name string) bool {
	for _, t := range Types {
		if t.Name == name {
			return true
		}
	}
	return false
}

func randomCenter(rng *pcore.RNG) r3.Vector {
	return r3.Vector{
		X: rng.Uniform(-halfExtent, halfExtent),
		Y: rng.Uniform(-halfExtent, halfExtent),
		Z: rng.Uniform(-halfExtent, halfExtent),
	}
}

// orebody scatters points around a tilted axis. Scatter widens with the
// distance along the axis and is rejected onto the plane perpendicular to
// it, so the body thickens without lengthening.
func (g *Generator) orebody(rng *pcore.RNG) *pointcloud.Cloud {
	cloud := pointcloud.NewWithCapacity(g.cfg.Count)
	center := randomCenter(rng)
	strike := rng.Uniform(0, 2*math.Pi)
	dip := rng.Uniform(0, math.Pi/2)
	axis := r3.Vector{
		X: math.Cos(strike) * math.Cos(dip),
		Y: math.Sin(strike) * math.Cos(dip),
		Z: -math.Sin(dip),
	}
	length := rng.Uniform(20, 40)

	for i := 0; i < g.cfg.Count; i++ {
		s := rng.Uniform(0, length)
		std := 1 + 0.1*s
		scatter := r3.Vector{
			X: rng.Normal(0, std),
			Y: rng.Normal(0, std),
			Z: rng.Normal(0, std),
		}
		perp := scatter.Sub(axis.Mul(scatter.Dot(axis)))
		cloud.Append(center.Add(axis.Mul(s)).Add(perp))
	}
	return cloud
}

// veins grows a biased random walk. Branch points accumulate into a
// fixed-capacity list during the trunk walk; sub-walks then fill the
// remaining budget and stop as soon as the count is reached. The trunk
// resumes if the branches fall short, so the output is always exactly
// Count points.
func (g *Generator) veins(rng *pcore.RNG) *pointcloud.Cloud {
	count := g.cfg.Count
	cloud := pointcloud.NewWithCapacity(count)
	if count == 0 {
		return cloud
	}

	pos := randomCenter(rng)
	cloud.Append(pos)

	bias := r3.Vector{
		X: rng.Sign() * rng.Uniform(0.2, 1),
		Y: rng.Sign() * rng.Uniform(0.2, 1),
		Z: rng.Sign() * rng.Uniform(0.2, 1),
	}.Normalize()

	// The trunk holds back budget for the branches it may record; small
	// counts clamp to zero rather than walking a negative range.
	trunkSteps := count - 1 - branchReserve*g.cfg.Complexity
	if trunkSteps < 0 {
		trunkSteps = 0
	}
	branches := make([]r3.Vector, 0, g.cfg.Complexity)
	for i := 0; i < trunkSteps; i++ {
		pos = walkStep(rng, pos, bias)
		cloud.Append(pos)
		if len(branches) < cap(branches) && rng.Float64() < 0.1 {
			branches = append(branches, pos)
		}
	}

	for _, bp := range branches {
		if cloud.Size() >= count {
			break
		}
		steps := 5 + rng.IntN(11)
		dir := r3.Vector{
			X: rng.Normal(0, 1),
			Y: rng.Normal(0, 1),
			Z: rng.Normal(0, 1),
		}.Normalize()
		sub := bp
		for j := 0; j < steps && cloud.Size() < count; j++ {
			sub = walkStep(rng, sub, dir)
			cloud.Append(sub)
		}
	}

	for cloud.Size() < count {
		pos = walkStep(rng, pos, bias)
		cloud.Append(pos)
	}
	cloud.Truncate(count)
	return cloud
}

// walkStep advances one stride along a normally perturbed direction.
func walkStep(rng *pcore.RNG, pos, bias r3.Vector) r3.Vector {
	dir := r3.Vector{
		X: bias.X + rng.Normal(0, 0.4),
		Y: bias.Y + rng.Normal(0, 0.4),
		Z: bias.Z + rng.Normal(0, 0.4),
	}.Normalize()
	return pos.Add(dir.Mul(rng.Uniform(1, 4)))
}

// layers stacks strata top-down. Each layer takes an even share of the
// budget; the remainder lands on the last layer.
func (g *Generator) layers(rng *pcore.RNG) *pointcloud.Cloud {
	count := g.cfg.Count
	cloud := pointcloud.NewWithCapacity(count)

	n := 2
	if g.cfg.Complexity > 2 {
		n = 2 + rng.IntN(g.cfg.Complexity-1)
	}
	z0 := rng.Uniform(-10, 10)

	per := count / n
	for layer := 0; layer < n; layer++ {
		share := per
		if layer == n-1 {
			share = count - per*(n-1)
		}
		cx := rng.Uniform(-halfExtent, halfExtent)
		cy := rng.Uniform(-halfExtent, halfExtent)
		cz := z0 - 8*float64(layer)
		for i := 0; i < share; i++ {
			theta := rng.Uniform(0, 2*math.Pi)
			radius := rng.Exp(15)
			cloud.Append(r3.Vector{
				X: cx + radius*math.Cos(theta),
				Y: cy + radius*math.Sin(theta),
				Z: cz + rng.Normal(0, 2),
			})
		}
	}
	return cloud
}

// contact wraps an aureole around one intrusion center: exponential radial
// falloff with uniformly drawn inclination and azimuth.
func (g *Generator) contact(rng *pcore.RNG) *pointcloud.Cloud {
	cloud := pointcloud.NewWithCapacity(g.cfg.Count)
	center := randomCenter(rng)
	for i := 0; i < g.cfg.Count; i++ {
		d := rng.Exp(10)
		incl := rng.Uniform(0, math.Pi)
		azim := rng.Uniform(0, 2*math.Pi)
		sin := math.Sin(incl)
		cloud.Append(center.Add(r3.Vector{
			X: d * sin * math.Cos(azim),
			Y: d * sin * math.Sin(azim),
			Z: d * math.Cos(incl),
		}))
	}
	return cloud
}

// placer spreads grains along a near-surface stream: normal spread along
// the flow, exponential falloff with random side across it, and a shallow
// exponential burial under the channel.
func (g *Generator) placer(rng *pcore.RNG) *pointcloud.Cloud {
	cloud := pointcloud.NewWithCapacity(g.cfg.Count)
	azim := rng.Uniform(0, 2*math.Pi)
	flow := r3.Vector{X: math.Cos(azim), Y: math.Sin(azim)}
	across := r3.Vector{X: -math.Sin(azim), Y: math.Cos(azim)}
	center := r3.Vector{
		X: rng.Uniform(-halfExtent, halfExtent),
		Y: rng.Uniform(-halfExtent, halfExtent),
		Z: rng.Uniform(-5, 0),
	}
	for i := 0; i < g.cfg.Count; i++ {
		along := rng.Normal(0, 20)
		lateral := rng.Sign() * rng.Exp(3)
		burial := rng.Exp(2)
		p := center.Add(flow.Mul(along)).Add(across.Mul(lateral))
		p.Z -= burial
		cloud.Append(p)
	}
	return cloud
}

// blobs draws one isotropic gaussian cluster.
func (g *Generator) blobs(rng *pcore.RNG) *pointcloud.Cloud {
	cloud := pointcloud.NewWithCapacity(g.cfg.Count)
	center := randomCenter(rng)
	for i := 0; i < g.cfg.Count; i++ {
		cloud.Append(r3.Vector{
			X: rng.Normal(center.X, 10),
			Y: rng.Normal(center.Y, 10),
			Z: rng.Normal(center.Z, 10),
		})
	}
	return cloud
}

// voxel accumulates hits on a coarse occupancy grid and emits a sample of
// the occupied cells mapped back to world units. Occupancy bounds the
// output, so this mode can return fewer than Count points.
func (g *Generator) voxel(rng *pcore.RNG) *pointcloud.Cloud {
	grid := core.NewVoxelGrid(voxelGridSize, voxelGridSize, voxelGridSize)
	cx := float64(10 + rng.IntN(10))
	cy := float64(10 + rng.IntN(10))
	cz := float64(10 + rng.IntN(10))
	for i := 0; i < 2*g.cfg.Count; i++ {
		x := clampVoxel(rng.Normal(cx, 4))
		y := clampVoxel(rng.Normal(cy, 4))
		z := clampVoxel(rng.Normal(cz, 4))
		grid.Add(x, y, z)
	}

	occ := grid.Occupied(nil)
	take := g.cfg.Count
	if take > len(occ) {
		take = len(occ)
	}
	// Partial Fisher-Yates; the first take entries become the sample.
	for i := 0; i < take; i++ {
		j := i + rng.IntN(len(occ)-i)
		occ[i], occ[j] = occ[j], occ[i]
	}

	cloud := pointcloud.NewWithCapacity(take)
	for _, v := range occ[:take] {
		cloud.Append(r3.Vector{
			X: float64(v[0])*voxelScale - 45,
			Y: float64(v[1])*voxelScale - 45,
			Z: float64(v[2])*voxelScale - 45,
		})
	}
	return cloud
}

func clampVoxel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > voxelGridSize-1 {
		return voxelGridSize - 1
	}
	return int(v)
}

// ParameterControls lists the HUD-adjustable generation parameters.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "count", Label: "Points", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 500, HasMin: true, HasMax: true},
		{Key: "mode", Label: "Mode", Type: core.ParamTypeInt, Step: 1},
		{Key: "complexity", Label: "Complexity", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "depth_factor", Label: "Depth factor", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 5, HasMin: true, HasMax: true},
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
	}
}

// SetIntParameter updates integer parameters from the HUD, clamping to the
// control bounds. The mode key wraps around the mode list.
func (g *Generator) SetIntParameter(key string, value int) bool {
	switch key {
	case "count":
		g.cfg.Count = clampInt(value, 0, 500)
	case "mode":
		g.cfg.Mode = Mode(((value % modeCount) + modeCount) % modeCount)
	case "complexity":
		g.cfg.Complexity = clampInt(value, 0, 10)
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
	case "depth_factor":
		g.cfg.DepthFactor = clampFloat(value, 0.1, 5)
	default:
		return false
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
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
	core.Register("minerals", func(cfg map[string]string) (core.Source, error) {
		return New(FromMap(cfg))
	})
}
