package app

import (
	"flag"
	"slices"
	"testing"

	"depositlab/internal/deposits/mineral"
)

func newMineralScene(t *testing.T) *Scene {
	t.Helper()
	gen, err := mineral.New(mineral.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	scene, err := NewScene(gen)
	if err != nil {
		t.Fatal(err)
	}
	return scene
}

func TestSceneLayersMatchTypes(t *testing.T) {
	scene := newMineralScene(t)
	layers := scene.Layers()
	if len(layers) != len(mineral.Types) {
		t.Fatalf("scene has %d layers, want %d", len(layers), len(mineral.Types))
	}
	for i, layer := range layers {
		if layer.Name != mineral.Types[i].Name {
			t.Fatalf("layer %d is %q, want %q", i, layer.Name, mineral.Types[i].Name)
		}
		if !layer.Visible {
			t.Fatalf("layer %q starts hidden", layer.Name)
		}
		if len(layer.Points) != 100 {
			t.Fatalf("layer %q has %d points, want the default 100", layer.Name, len(layer.Points))
		}
	}
}

func TestSceneRegenerateDeterministic(t *testing.T) {
	scene := newMineralScene(t)
	before := make([][]float64, 0)
	for _, layer := range scene.Layers() {
		coords := make([]float64, 0, len(layer.Points)*3)
		for _, p := range layer.Points {
			coords = append(coords, p.X, p.Y, p.Z)
		}
		before = append(before, coords)
	}

	if err := scene.Regenerate(); err != nil {
		t.Fatal(err)
	}
	for i, layer := range scene.Layers() {
		coords := make([]float64, 0, len(layer.Points)*3)
		for _, p := range layer.Points {
			coords = append(coords, p.X, p.Y, p.Z)
		}
		if !slices.Equal(before[i], coords) {
			t.Fatalf("layer %q changed across regeneration with a fixed seed", layer.Name)
		}
	}
}

func TestSceneTogglePersistsAcrossRegenerate(t *testing.T) {
	scene := newMineralScene(t)
	scene.ToggleLayer(2)
	if scene.Layers()[2].Visible {
		t.Fatal("toggle did not hide layer 2")
	}

	if err := scene.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if scene.Layers()[2].Visible {
		t.Fatal("regeneration forgot the hidden layer")
	}

	scene.ToggleLayer(2)
	if !scene.Layers()[2].Visible {
		t.Fatal("second toggle did not restore layer 2")
	}

	// Out-of-range toggles are ignored.
	scene.ToggleLayer(-1)
	scene.ToggleLayer(99)
}

func TestSceneExtentPositive(t *testing.T) {
	scene := newMineralScene(t)
	if scene.Extent() <= 0 {
		t.Fatalf("extent = %v, want positive for a populated scene", scene.Extent())
	}
}

func TestConfigGeneratorMap(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "7", "-mode", "veins", "-count", "220"}); err != nil {
		t.Fatal(err)
	}

	m := cfg.GeneratorMap()
	if m["seed"] != "7" || m["mode"] != "veins" || m["count"] != "220" {
		t.Fatalf("generator map = %v", m)
	}
	if m["basin_size"] != "50" {
		t.Fatalf("default basin size mapped to %q", m["basin_size"])
	}
}
