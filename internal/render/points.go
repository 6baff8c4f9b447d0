package render

import "sort"

// PointPainter rasterizes projected points into an RGBA scratch buffer.
// The buffer layout matches what the GUI blit expects, but filling it is
// plain CPU work.
type PointPainter struct {
	w, h int
	buf  []byte

	// scratch kept between frames to avoid per-frame allocation
	plots []plot
}

type plot struct {
	x, y  int
	depth float64
	t     float64
	layer int
}

// NewPointPainter allocates a painter for a w x h canvas.
func NewPointPainter(w, h int) *PointPainter {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &PointPainter{w: w, h: h, buf: make([]byte, w*h*4)}
}

// Size returns the canvas dimensions.
func (p *PointPainter) Size() (int, int) { return p.w, p.h }

// Buffer exposes the RGBA pixels of the last rasterized frame.
func (p *PointPainter) Buffer() []byte { return p.buf }

// Rasterize clears the canvas and plots every visible layer's points,
// back to front, as small depth-shaded squares. minZ and maxZ bound the
// scene elevations and normalize the depth shading.
func (p *PointPainter) Rasterize(layers []Layer, cam Camera, minZ, maxZ float64) {
	for i := range p.buf {
		p.buf[i] = 0
	}

	zRange := maxZ - minZ
	if zRange <= 0 {
		zRange = 1
	}

	p.plots = p.plots[:0]
	for li, layer := range layers {
		if !layer.Visible {
			continue
		}
		for _, pt := range layer.Points {
			sx, sy, depth := cam.Project(pt, p.w, p.h)
			x, y := int(sx), int(sy)
			if x < -1 || x > p.w || y < -1 || y > p.h {
				continue
			}
			p.plots = append(p.plots, plot{
				x:     x,
				y:     y,
				depth: depth,
				t:     (pt.Z - minZ) / zRange,
				layer: li,
			})
		}
	}

	// Farthest first so near points overwrite far ones.
	sort.Slice(p.plots, func(i, j int) bool { return p.plots[i].depth > p.plots[j].depth })

	for _, pl := range p.plots {
		col := Shade(layers[pl.layer].Color, pl.t)
		p.square(pl.x, pl.y, col.R, col.G, col.B)
	}
}

// square fills a 2x2 block anchored at (x, y), clipped to the canvas.
func (p *PointPainter) square(x, y int, r, g, b uint8) {
	for dy := 0; dy < 2; dy++ {
		py := y + dy
		if py < 0 || py >= p.h {
			continue
		}
		for dx := 0; dx < 2; dx++ {
			px := x + dx
			if px < 0 || px >= p.w {
				continue
			}
			base := (py*p.w + px) * 4
			p.buf[base+0] = r
			p.buf[base+1] = g
			p.buf[base+2] = b
			p.buf[base+3] = 255
		}
	}
}
