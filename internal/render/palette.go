package render

import (
	"image/color"
	"log"

	"github.com/mazznoer/colorgrad"
)

// depthGrad shades points by burial depth, deep blue at the bottom of the
// scene up to a warm pale near the surface.
var depthGrad = func() colorgrad.Gradient {
	g := colorgrad.NewGradient()
	g.Colors(
		color.RGBA{R: 24, G: 32, B: 96, A: 255},
		color.RGBA{R: 48, G: 96, B: 160, A: 255},
		color.RGBA{R: 96, G: 160, B: 128, A: 255},
		color.RGBA{R: 200, G: 176, B: 96, A: 255},
		color.RGBA{R: 248, G: 240, B: 208, A: 255},
	)
	grad, err := g.Build()
	if err != nil {
		log.Fatal(err)
	}
	return grad
}()

// DepthColor returns the palette color at normalized depth t, where 0 is
// the deepest point in the scene and 1 the shallowest.
func DepthColor(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, b := depthGrad.At(t).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Shade blends a deposit's base color toward the depth palette so clouds
// keep their identity while still reading depth at a glance.
func Shade(base color.RGBA, t float64) color.RGBA {
	d := DepthColor(t)
	return color.RGBA{
		R: mix(base.R, d.R),
		G: mix(base.G, d.G),
		B: mix(base.B, d.B),
		A: 255,
	}
}

func mix(a, b uint8) uint8 {
	return uint8((int(a)*3 + int(b)) / 4)
}
