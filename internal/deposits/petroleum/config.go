package petroleum

import (
	"fmt"
	"math"
	"strconv"
)

// Config controls petroleum deposit generation.
type Config struct {
	BasinSize      float64 // lateral extent of the basin, world units
	ReservoirCount int     // reservoirs per petroleum system
	TrapEfficiency float64 // multiplies the nominal point yield per trap
	Seed           int64   // global seed; each system derives its own stream
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		BasinSize:      50,
		ReservoirCount: 3,
		TrapEfficiency: 0.6,
		Seed:           42,
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
	if v, ok := cfg["basin_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.BasinSize = parsed
		}
	}
	if v, ok := cfg["reservoirs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ReservoirCount = parsed
		}
	}
	if v, ok := cfg["trap_efficiency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.TrapEfficiency = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func (c Config) validate() error {
	if math.IsNaN(c.BasinSize) || c.BasinSize <= 0 {
		return fmt.Errorf("petroleum: basin size %v must be positive", c.BasinSize)
	}
	if c.ReservoirCount < 0 {
		return fmt.Errorf("petroleum: reservoir count %d is negative", c.ReservoirCount)
	}
	if math.IsNaN(c.TrapEfficiency) || c.TrapEfficiency <= 0 {
		return fmt.Errorf("petroleum: trap efficiency %v must be positive", c.TrapEfficiency)
	}
	return nil
}
