package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the viewer and
// tool binaries.
type Config struct {
	Source string
	Scale  int
	TPS    int
	Seed   int64

	// mineral generation
	Count       int
	Mode        string
	DepthFactor float64
	Complexity  int

	// petroleum generation
	BasinSize      float64
	Reservoirs     int
	TrapEfficiency float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Source:         "minerals",
		Scale:          3,
		TPS:            60,
		Seed:           42,
		Count:          100,
		Mode:           "orebody",
		DepthFactor:    1.0,
		Complexity:     3,
		BasinSize:      50,
		Reservoirs:     3,
		TrapEfficiency: 0.6,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "deposit source to render")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "global generation seed")
	fs.IntVar(&c.Count, "count", c.Count, "points per mineral deposit")
	fs.StringVar(&c.Mode, "mode", c.Mode, "mineral formation mode")
	fs.Float64Var(&c.DepthFactor, "depth-factor", c.DepthFactor, "elevation multiplier for minerals")
	fs.IntVar(&c.Complexity, "complexity", c.Complexity, "vein branches / sedimentary layer ceiling")
	fs.Float64Var(&c.BasinSize, "basin-size", c.BasinSize, "petroleum basin extent")
	fs.IntVar(&c.Reservoirs, "reservoirs", c.Reservoirs, "reservoirs per petroleum system")
	fs.Float64Var(&c.TrapEfficiency, "trap-efficiency", c.TrapEfficiency, "petroleum trap yield multiplier")
}

// GeneratorMap converts the flag values into the string map the source
// factories consume. Every generator picks out the keys it recognizes.
func (c *Config) GeneratorMap() map[string]string {
	return map[string]string{
		"seed":            strconv.FormatInt(c.Seed, 10),
		"count":           strconv.Itoa(c.Count),
		"mode":            c.Mode,
		"depth_factor":    strconv.FormatFloat(c.DepthFactor, 'f', -1, 64),
		"complexity":      strconv.Itoa(c.Complexity),
		"basin_size":      strconv.FormatFloat(c.BasinSize, 'f', -1, 64),
		"reservoirs":      strconv.Itoa(c.Reservoirs),
		"trap_efficiency": strconv.FormatFloat(c.TrapEfficiency, 'f', -1, 64),
	}
}
