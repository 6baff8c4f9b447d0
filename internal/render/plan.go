package render

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// PlanView renders a top-down map of the visible layers onto a square
// image: a light reference grid with one filled dot per point in the
// layer's display color. Easting grows right, northing grows up.
func PlanView(layers []Layer, size int) image.Image {
	if size < 16 {
		size = 16
	}
	dest := image.NewRGBA(image.Rect(0, 0, size, size))
	gc := draw2dimg.NewGraphicContext(dest)

	gc.SetFillColor(color.RGBA{R: 12, G: 12, B: 18, A: 255})
	draw2dkit.Rectangle(gc, 0, 0, float64(size), float64(size))
	gc.Fill()

	minX, maxX, minY, maxY, any := planBounds(layers)
	if !any {
		return dest
	}
	// Square extent with a margin so the aspect ratio stays true.
	extent := maxX - minX
	if maxY-minY > extent {
		extent = maxY - minY
	}
	if extent <= 0 {
		extent = 1
	}
	extent *= 1.1
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	scale := float64(size) / extent

	gc.SetStrokeColor(color.RGBA{R: 40, G: 44, B: 52, A: 255})
	gc.SetLineWidth(1)
	for i := 1; i < 8; i++ {
		pos := float64(size) * float64(i) / 8
		gc.BeginPath()
		gc.MoveTo(pos, 0)
		gc.LineTo(pos, float64(size))
		gc.Stroke()
		gc.BeginPath()
		gc.MoveTo(0, pos)
		gc.LineTo(float64(size), pos)
		gc.Stroke()
	}

	for _, layer := range layers {
		if !layer.Visible {
			continue
		}
		gc.SetFillColor(layer.Color)
		for _, pt := range layer.Points {
			px := float64(size)/2 + (pt.X-cx)*scale
			py := float64(size)/2 - (pt.Y-cy)*scale
			draw2dkit.Circle(gc, px, py, 2)
			gc.Fill()
		}
	}
	return dest
}

func planBounds(layers []Layer) (minX, maxX, minY, maxY float64, any bool) {
	for _, layer := range layers {
		if !layer.Visible {
			continue
		}
		for _, pt := range layer.Points {
			if !any {
				minX, maxX = pt.X, pt.X
				minY, maxY = pt.Y, pt.Y
				any = true
				continue
			}
			if pt.X < minX {
				minX = pt.X
			}
			if pt.X > maxX {
				maxX = pt.X
			}
			if pt.Y < minY {
				minY = pt.Y
			}
			if pt.Y > maxY {
				maxY = pt.Y
			}
		}
	}
	return minX, maxX, minY, maxY, any
}
