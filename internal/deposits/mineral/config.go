package mineral

import (
	"fmt"
	"math"
	"strconv"
)

// Config controls mineral deposit generation.
type Config struct {
	Count       int     // points per deposit type
	Seed        int64   // global seed; each type derives its own stream
	Mode        Mode    // formation model
	DepthFactor float64 // multiplies every elevation after generation
	Complexity  int     // vein branch budget / sedimentary layer ceiling
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Count:       100,
		Seed:        42,
		Mode:        ModeOrebody,
		DepthFactor: 1.0,
		Complexity:  3,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Values that fail to parse keep their defaults; range errors are
// left for validation so callers see them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Count = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["depth_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(parsed) {
			c.DepthFactor = parsed
		}
	}
	if v, ok := cfg["complexity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Complexity = parsed
		}
	}
	return c
}

func (c Config) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("mineral: point count %d is negative", c.Count)
	}
	if c.Mode < 0 || int(c.Mode) >= modeCount {
		return fmt.Errorf("mineral: unknown formation mode %d", int(c.Mode))
	}
	if math.IsNaN(c.DepthFactor) {
		return fmt.Errorf("mineral: depth factor is NaN")
	}
	if c.Complexity < 0 {
		return fmt.Errorf("mineral: complexity %d is negative", c.Complexity)
	}
	return nil
}
