//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Blitter uploads rasterized frames to the GPU, reusing one texture
// across frames.
type Blitter struct {
	tex *ebiten.Image
}

// Blit uploads the painter's buffer and draws it scaled onto screen.
func (b *Blitter) Blit(screen *ebiten.Image, p *PointPainter, scale int) {
	if scale <= 0 {
		scale = 1
	}
	w, h := p.Size()
	if b.tex == nil || b.tex.Bounds().Dx() != w || b.tex.Bounds().Dy() != h {
		b.tex = ebiten.NewImage(w, h)
	}
	b.tex.WritePixels(p.Buffer())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(b.tex, op)
}
