// Package render rasterizes deposit point clouds into plain RGBA pixel
// buffers. Everything except the final blit is pure CPU work, so the
// projection and painting paths stay testable in headless builds.
package render

import (
	"image/color"
	"math"

	"github.com/golang/geo/r3"
)

// Layer is one renderable point set with its display color.
type Layer struct {
	Name    string
	Points  []r3.Vector
	Color   color.RGBA
	Visible bool
}

// Camera defines an orbiting orthographic view of the scene. Yaw rotates
// about the vertical axis, pitch tilts the view toward top-down, and zoom
// scales world units to pixels.
type Camera struct {
	Yaw    float64
	Pitch  float64
	Zoom   float64
	Center r3.Vector
}

// Project maps a world point to screen coordinates on a w x h canvas and
// returns the view depth used for back-to-front ordering. At yaw 0 and
// pitch 0 the screen shows easting left-right and elevation bottom-up.
func (c Camera) Project(p r3.Vector, w, h int) (sx, sy, depth float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	v := p.Sub(c.Center)

	cosYaw, sinYaw := math.Cos(c.Yaw), math.Sin(c.Yaw)
	x := v.X*cosYaw - v.Y*sinYaw
	y := v.X*sinYaw + v.Y*cosYaw

	cosPitch, sinPitch := math.Cos(c.Pitch), math.Sin(c.Pitch)
	sx = float64(w)/2 + zoom*x
	sy = float64(h)/2 - zoom*(v.Z*cosPitch+y*sinPitch)
	depth = y*cosPitch - v.Z*sinPitch
	return sx, sy, depth
}

// FitZoom returns the zoom that fits a bounding extent into the canvas
// with a small margin.
func FitZoom(extent float64, w, h int) float64 {
	if extent <= 0 {
		return 1
	}
	limit := float64(w)
	if float64(h) < limit {
		limit = float64(h)
	}
	return limit * 0.85 / extent
}
