package petroleum

import (
	"math"
	"slices"
	"testing"

	"depositlab/internal/core"
)

func typeByName(t *testing.T, name string) core.DepositType {
	t.Helper()
	for _, dt := range Types {
		if dt.Name == name {
			return dt
		}
	}
	t.Fatalf("no such petroleum type %q", name)
	return core.DepositType{}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9001
	gen, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, dt := range Types {
		first, err := gen.Generate(dt)
		if err != nil {
			t.Fatalf("Generate(%s): %v", dt.Name, err)
		}
		second, err := gen.Generate(dt)
		if err != nil {
			t.Fatalf("Generate(%s): %v", dt.Name, err)
		}
		if !slices.Equal(first.Points(), second.Points()) {
			t.Fatalf("%s not deterministic for identical config", dt.Name)
		}
	}
}

func TestSeedIsolationBetweenSystems(t *testing.T) {
	gen, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	oil := typeByName(t, "Oil")
	alone, err := gen.Generate(oil)
	if err != nil {
		t.Fatal(err)
	}
	for _, dt := range Types {
		if dt.Name == "Oil" {
			continue
		}
		if _, err := gen.Generate(dt); err != nil {
			t.Fatalf("Generate(%s): %v", dt.Name, err)
		}
	}
	after, err := gen.Generate(oil)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(alone.Points(), after.Points()) {
		t.Fatal("generating other systems perturbed the Oil cloud")
	}
}

func TestValidationFailsFast(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero basin", func(c *Config) { c.BasinSize = 0 }},
		{"negative basin", func(c *Config) { c.BasinSize = -10 }},
		{"nan basin", func(c *Config) { c.BasinSize = math.NaN() }},
		{"negative reservoirs", func(c *Config) { c.ReservoirCount = -1 }},
		{"zero efficiency", func(c *Config) { c.TrapEfficiency = 0 }},
		{"negative efficiency", func(c *Config) { c.TrapEfficiency = -0.5 }},
		{"nan efficiency", func(c *Config) { c.TrapEfficiency = math.NaN() }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if _, err := New(cfg); err == nil {
			t.Fatalf("%s: New accepted invalid config %+v", tc.name, cfg)
		}
	}
}

func TestTotalSizeMatchesTrapYields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BasinSize = 50
	cfg.ReservoirCount = 5
	cfg.TrapEfficiency = 0.6
	cfg.Seed = 42
	gen, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, dt := range Types {
		survey, err := gen.Survey(dt)
		if err != nil {
			t.Fatalf("Survey(%s): %v", dt.Name, err)
		}
		cloud, err := gen.Generate(dt)
		if err != nil {
			t.Fatalf("Generate(%s): %v", dt.Name, err)
		}
		if cloud.Size() != survey.TotalPoints {
			t.Fatalf("%s cloud size %d, survey total %d", dt.Name, cloud.Size(), survey.TotalPoints)
		}

		want := 0
		for _, rep := range survey.Reservoirs {
			n := int(float64(rep.Trap.BasePoints()) * cfg.TrapEfficiency)
			if rep.Points != n {
				t.Fatalf("%s reservoir yield %d, want floor(%d x %v) = %d",
					dt.Name, rep.Points, rep.Trap.BasePoints(), cfg.TrapEfficiency, n)
			}
			want += n
		}
		if survey.TotalPoints != want {
			t.Fatalf("%s total %d, want %d", dt.Name, survey.TotalPoints, want)
		}
	}
}

func TestAnticlineDomeBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReservoirCount = 12
	cfg.Seed = 7
	gen, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	oil := typeByName(t, "Oil")
	survey, err := gen.Survey(oil)
	if err != nil {
		t.Fatal(err)
	}
	cloud, err := gen.Generate(oil)
	if err != nil {
		t.Fatal(err)
	}

	decay := cfg.BasinSize / 6
	offset := 0
	checked := 0
	for _, rep := range survey.Reservoirs {
		if rep.Trap != TrapAnticline {
			offset += rep.Points
			continue
		}
		for i := 0; i < rep.Points; i++ {
			p := cloud.At(offset + i)
			rd := math.Hypot(p.X-rep.CenterX, p.Y-rep.CenterY)
			dome := rep.DepthBase + rep.Thickness*math.Exp(-rd/decay)
			if dome > rep.DepthBase+rep.Thickness+1e-9 {
				t.Fatalf("dome term %v exceeds cap %v", dome, rep.DepthBase+rep.Thickness)
			}
			// Residual is the noise draw, sigma thickness/10.
			if noise := math.Abs(p.Z - dome); noise > rep.Thickness {
				t.Fatalf("noise residual %v implausibly large for thickness %v", noise, rep.Thickness)
			}
			checked++
		}
		offset += rep.Points
	}
	if checked == 0 {
		t.Skip("seed drew no anticline reservoirs")
	}
}

func TestOilScenarioStable(t *testing.T) {
	cfg := Config{BasinSize: 50, ReservoirCount: 3, TrapEfficiency: 0.6, Seed: 42}
	gen, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	oil := typeByName(t, "Oil")

	survey, err := gen.Survey(oil)
	if err != nil {
		t.Fatal(err)
	}
	if len(survey.Reservoirs) != 3 {
		t.Fatalf("scenario planned %d reservoirs, want 3", len(survey.Reservoirs))
	}
	want := 0
	for _, rep := range survey.Reservoirs {
		want += int(float64(rep.Trap.BasePoints()) * 0.6)
	}

	first, err := gen.Generate(oil)
	if err != nil {
		t.Fatal(err)
	}
	if first.Size() != want {
		t.Fatalf("scenario cloud has %d points, want %d", first.Size(), want)
	}
	second, err := gen.Generate(oil)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first.Points(), second.Points()) {
		t.Fatal("seed 42 scenario not reproducible")
	}
}

func TestZeroReservoirsYieldEmptyCloud(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReservoirCount = 0
	gen, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cloud, err := gen.Generate(typeByName(t, "Gas Hydrates"))
	if err != nil {
		t.Fatal(err)
	}
	if cloud.Size() != 0 {
		t.Fatalf("zero reservoirs produced %d points", cloud.Size())
	}
}

func TestDepthsStayWithinClassRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReservoirCount = 6
	gen, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	hydrates := typeByName(t, "Gas Hydrates")
	survey, err := gen.Survey(hydrates)
	if err != nil {
		t.Fatal(err)
	}
	for _, rep := range survey.Reservoirs {
		if rep.DepthBase < -1000 || rep.DepthBase > -200 {
			t.Fatalf("hydrate depth base %v outside [-1000, -200]", rep.DepthBase)
		}
		if rep.Thickness < 20 || rep.Thickness > 100 {
			t.Fatalf("hydrate thickness %v outside [20, 100]", rep.Thickness)
		}
	}
}

func TestParseTrap(t *testing.T) {
	if tr, err := ParseTrap("fault_trap"); err != nil || tr != TrapFault {
		t.Fatalf("ParseTrap(fault_trap) = %v, %v", tr, err)
	}
	if _, err := ParseTrap("salt_dome"); err == nil {
		t.Fatal("ParseTrap accepted an unknown trap")
	}
}
