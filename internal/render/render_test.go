package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestProjectFrontView(t *testing.T) {
	cam := Camera{Zoom: 2}
	sx, sy, depth := cam.Project(r3.Vector{X: 10, Y: 5, Z: -3}, 320, 240)
	if sx != 160+20 {
		t.Fatalf("sx = %v, want 180", sx)
	}
	if sy != 120+6 {
		t.Fatalf("sy = %v, want 126", sy)
	}
	if depth != 5 {
		t.Fatalf("depth = %v, want northing 5", depth)
	}
}

func TestProjectHalfTurnMirrors(t *testing.T) {
	cam := Camera{Zoom: 1, Yaw: math.Pi}
	sx, _, depth := cam.Project(r3.Vector{X: 10}, 200, 200)
	if math.Abs(sx-90) > 1e-9 {
		t.Fatalf("sx after half turn = %v, want 90", sx)
	}
	if math.Abs(depth) > 1e-9 {
		t.Fatalf("depth after half turn = %v, want 0", depth)
	}
}

func TestProjectCenterRecentering(t *testing.T) {
	cam := Camera{Zoom: 1, Center: r3.Vector{X: 7, Y: -2, Z: 3}}
	sx, sy, _ := cam.Project(r3.Vector{X: 7, Y: -2, Z: 3}, 100, 100)
	if sx != 50 || sy != 50 {
		t.Fatalf("camera center projected to (%v, %v), want canvas center", sx, sy)
	}
}

func TestRasterizePlotsPoint(t *testing.T) {
	p := NewPointPainter(64, 64)
	layers := []Layer{{
		Name:    "test",
		Points:  []r3.Vector{{X: 0, Y: 0, Z: 0}},
		Color:   color.RGBA{R: 255, A: 255},
		Visible: true,
	}}
	p.Rasterize(layers, Camera{Zoom: 1}, -1, 1)

	base := (32*64 + 32) * 4
	buf := p.Buffer()
	if buf[base+3] != 255 {
		t.Fatal("center pixel not plotted")
	}
	if buf[base+0] == 0 {
		t.Fatal("center pixel lost the layer's red channel")
	}
}

func TestRasterizeSkipsHiddenLayers(t *testing.T) {
	p := NewPointPainter(32, 32)
	layers := []Layer{{
		Points:  []r3.Vector{{}},
		Color:   color.RGBA{R: 255, A: 255},
		Visible: false,
	}}
	p.Rasterize(layers, Camera{Zoom: 1}, -1, 1)
	for i, b := range p.Buffer() {
		if b != 0 {
			t.Fatalf("hidden layer wrote byte %d", i)
		}
	}
}

func TestRasterizeDepthOrder(t *testing.T) {
	p := NewPointPainter(64, 64)
	red := color.RGBA{R: 200, A: 255}
	blue := color.RGBA{B: 200, A: 255}
	// Both points project to the canvas center; the near one (smaller
	// depth, i.e. smaller northing at yaw 0) must win.
	layers := []Layer{
		{Points: []r3.Vector{{Y: 10}}, Color: red, Visible: true},
		{Points: []r3.Vector{{Y: -10}}, Color: blue, Visible: true},
	}
	p.Rasterize(layers, Camera{Zoom: 1}, -1, 1)

	base := (32*64 + 32) * 4
	buf := p.Buffer()
	if buf[base+2] <= buf[base+0] {
		t.Fatalf("far point painted over near point: rgb(%d, %d, %d)",
			buf[base+0], buf[base+1], buf[base+2])
	}
}

func TestShadeEndpoints(t *testing.T) {
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	deep := Shade(base, 0)
	shallow := Shade(base, 1)
	if deep == shallow {
		t.Fatal("depth shading has no effect across the range")
	}
	if deep.R >= shallow.R {
		t.Fatalf("deep shade %v should be cooler than shallow %v", deep, shallow)
	}
	// Out-of-range values clamp instead of wrapping.
	if Shade(base, -4) != deep || Shade(base, 9) != shallow {
		t.Fatal("Shade does not clamp t to [0, 1]")
	}
}

func TestPlanViewDrawsPoints(t *testing.T) {
	layers := []Layer{{
		Points:  []r3.Vector{{X: -10, Y: -10}, {X: 10, Y: 10}},
		Color:   color.RGBA{R: 255, G: 215, B: 0, A: 255},
		Visible: true,
	}}
	img := PlanView(layers, 128)
	bounds := img.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 128 {
		t.Fatalf("plan view bounds %v, want 128x128", bounds)
	}

	found := false
	rgba := img.(*image.RGBA)
	for y := 0; y < 128 && !found; y++ {
		for x := 0; x < 128; x++ {
			r, g, _, _ := rgba.At(x, y).RGBA()
			if r>>8 > 200 && g>>8 > 150 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("no deposit-colored pixels in the plan view")
	}
}

func TestFitZoom(t *testing.T) {
	if z := FitZoom(100, 320, 240); math.Abs(z-240*0.85/100) > 1e-9 {
		t.Fatalf("FitZoom = %v", z)
	}
	if z := FitZoom(0, 320, 240); z != 1 {
		t.Fatalf("FitZoom with zero extent = %v, want 1", z)
	}
}
