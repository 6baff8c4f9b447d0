package mineral

import (
	"math"
	"slices"
	"testing"

	"depositlab/internal/core"
	"depositlab/pkg/pointcloud"
)

func mustGenerate(t *testing.T, cfg Config, name string) *pointcloud.Cloud {
	t.Helper()
	gen, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	var dt = Types[0]
	for _, candidate := range Types {
		if candidate.Name == name {
			dt = candidate
		}
	}
	cloud, err := gen.Generate(dt)
	if err != nil {
		t.Fatalf("Generate(%s): %v", name, err)
	}
	return cloud
}

func TestGenerateDeterministicPerMode(t *testing.T) {
	for _, mode := range Modes() {
		cfg := DefaultConfig()
		cfg.Mode = mode
		cfg.Count = 80
		cfg.Seed = 1234

		first := mustGenerate(t, cfg, "Iron").Points()
		second := mustGenerate(t, cfg, "Iron").Points()
		if !slices.Equal(first, second) {
			t.Fatalf("mode %s not deterministic for identical config", mode)
		}

		cfg.Seed = 1235
		other := mustGenerate(t, cfg, "Iron").Points()
		if slices.Equal(first, other) {
			t.Fatalf("mode %s produced identical clouds for different seeds", mode)
		}
	}
}

func TestCountContract(t *testing.T) {
	for _, mode := range Modes() {
		for _, count := range []int{0, 1, 2, 7, 50, 150} {
			cfg := DefaultConfig()
			cfg.Mode = mode
			cfg.Count = count

			cloud := mustGenerate(t, cfg, "Copper")
			if mode == ModeVoxel {
				if cloud.Size() > count {
					t.Fatalf("voxel mode emitted %d points for count %d", cloud.Size(), count)
				}
				continue
			}
			if cloud.Size() != count {
				t.Fatalf("mode %s emitted %d points, want %d", mode, cloud.Size(), count)
			}
		}
	}
}

func TestDepthFactorScalesElevationOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModePlacer
	cfg.Count = 60
	cfg.DepthFactor = 1.0
	base := mustGenerate(t, cfg, "Gold").Points()

	cfg.DepthFactor = 2.5
	scaled := mustGenerate(t, cfg, "Gold").Points()

	if len(base) != len(scaled) {
		t.Fatalf("size changed with depth factor: %d vs %d", len(base), len(scaled))
	}
	for i := range base {
		if base[i].X != scaled[i].X || base[i].Y != scaled[i].Y {
			t.Fatalf("point %d moved horizontally: %v vs %v", i, base[i], scaled[i])
		}
		if math.Abs(scaled[i].Z-2.5*base[i].Z) > 1e-9 {
			t.Fatalf("point %d elevation %v, want %v", i, scaled[i].Z, 2.5*base[i].Z)
		}
	}
}

func TestSeedIsolationBetweenTypes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeVeins
	cfg.Count = 90

	gen, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Gold alone.
	goldOnly, err := gen.Generate(Types[1])
	if err != nil {
		t.Fatal(err)
	}

	// Gold after generating every other type first.
	for _, dt := range Types {
		if dt.Name == "Gold" {
			continue
		}
		if _, err := gen.Generate(dt); err != nil {
			t.Fatalf("Generate(%s): %v", dt.Name, err)
		}
	}
	goldAfter, err := gen.Generate(Types[1])
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(goldOnly.Points(), goldAfter.Points()) {
		t.Fatal("generating other types perturbed the Gold cloud")
	}
}

func TestVeinsSmallCountsStayInBudget(t *testing.T) {
	for _, count := range []int{0, 1, 2, 3} {
		cfg := DefaultConfig()
		cfg.Mode = ModeVeins
		cfg.Count = count
		cfg.Complexity = 8

		cloud := mustGenerate(t, cfg, "Silver")
		if cloud.Size() != count {
			t.Fatalf("veins with count %d emitted %d points", count, cloud.Size())
		}
	}
}

func TestLayersDescendInBands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeLayers
	cfg.Count = 120
	cfg.Complexity = 5

	cloud := mustGenerate(t, cfg, "Coal")
	meta := cloud.Meta()
	// Layer centers step down 8 units apiece; with up to 5 layers and
	// jitter sigma 2 the cloud must span well under the full frame.
	if span := meta.MaxZ - meta.MinZ; span > 8*5+30 {
		t.Fatalf("layer cloud spans %v vertically, want stratified bands", span)
	}
}

func TestNegativeCountRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = -5
	if _, err := New(cfg); err == nil {
		t.Fatal("New accepted a negative point count")
	}
}

func TestUnknownTypeRejected(t *testing.T) {
	gen, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Generate(core.DepositType{Name: "Unobtainium"}); err == nil {
		t.Fatal("Generate accepted an unknown deposit type")
	}
}

func TestGoldOrebodyScenario(t *testing.T) {
	cfg := Config{Count: 50, Seed: 42, Mode: ModeOrebody, DepthFactor: 1.0, Complexity: 3}

	first := mustGenerate(t, cfg, "Gold")
	if first.Size() != 50 {
		t.Fatalf("scenario cloud has %d points, want 50", first.Size())
	}
	second := mustGenerate(t, cfg, "Gold")
	if !slices.Equal(first.Points(), second.Points()) {
		t.Fatal("seed 42 scenario not reproducible")
	}

	cfg.Seed = 43
	reseeded := mustGenerate(t, cfg, "Gold")
	if reseeded.Size() != 50 {
		t.Fatalf("reseeded cloud has %d points, want 50", reseeded.Size())
	}
	if slices.Equal(first.Points(), reseeded.Points()) {
		t.Fatal("seed 43 reproduced the seed 42 cloud")
	}
}

func TestParseModeAcceptsLabels(t *testing.T) {
	if m, err := ParseMode("Hydrothermal veins"); err != nil || m != ModeVeins {
		t.Fatalf("ParseMode(label) = %v, %v", m, err)
	}
	if m, err := ParseMode("placer"); err != nil || m != ModePlacer {
		t.Fatalf("ParseMode(short) = %v, %v", m, err)
	}
	if _, err := ParseMode("unknowium"); err == nil {
		t.Fatal("ParseMode accepted an unknown name")
	}
}

func TestFromMapParsesAndDefaults(t *testing.T) {
	cfg := FromMap(map[string]string{
		"count":      "200",
		"mode":       "layers",
		"seed":       "7",
		"complexity": "4",
	})
	if cfg.Count != 200 || cfg.Mode != ModeLayers || cfg.Seed != 7 || cfg.Complexity != 4 {
		t.Fatalf("FromMap = %+v", cfg)
	}
	if cfg.DepthFactor != 1.0 {
		t.Fatalf("unset depth factor = %v, want default 1.0", cfg.DepthFactor)
	}

	// Unparseable values fall back to defaults; range errors do not.
	cfg = FromMap(map[string]string{"count": "-3", "mode": "bogus"})
	if cfg.Count != -3 {
		t.Fatalf("negative count should survive to validation, got %d", cfg.Count)
	}
	if cfg.Mode != ModeOrebody {
		t.Fatalf("bad mode should keep default, got %v", cfg.Mode)
	}
	if _, err := New(cfg); err == nil {
		t.Fatal("validation accepted negative count from map")
	}
}

var sinkCloud *pointcloud.Cloud

func BenchmarkGenerateVeins(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Mode = ModeVeins
	cfg.Count = 300
	gen, err := New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cloud, err := gen.Generate(Types[1])
		if err != nil {
			b.Fatal(err)
		}
		sinkCloud = cloud
	}
}
