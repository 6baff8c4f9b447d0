//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"depositlab/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// LegendEntry is one deposit layer line in the overlay legend.
type LegendEntry struct {
	Name    string
	Color   color.RGBA
	Count   int
	Visible bool
}

// Overlay draws the deposit legend, the depth gradient bar, and a status
// line on top of the rendered scene. Key L toggles it.
type Overlay struct {
	visible bool

	entries  []LegendEntry
	status   string
	minDepth float64
	maxDepth float64

	pixel *ebiten.Image
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	o := &Overlay{visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.visible = !o.visible
	}
}

// SetEntries replaces the legend rows.
func (o *Overlay) SetEntries(entries []LegendEntry) { o.entries = entries }

// SetStatus replaces the status line under the legend.
func (o *Overlay) SetStatus(status string) { o.status = status }

// SetDepthRange updates the labels on the depth gradient bar.
func (o *Overlay) SetDepthRange(min, max float64) {
	o.minDepth = min
	o.maxDepth = max
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13

	const (
		margin     = 8
		rowHeight  = 16
		swatchSize = 10
	)

	y := margin
	for i, entry := range o.entries {
		swatch := entry.Color
		label := color.RGBA{R: 230, G: 230, B: 240, A: 255}
		if !entry.Visible {
			swatch = color.RGBA{R: 60, G: 60, B: 66, A: 255}
			label = color.RGBA{R: 120, G: 120, B: 130, A: 255}
		}
		o.fillRect(screen, margin, y, swatchSize, swatchSize, swatch)
		line := fmt.Sprintf("%d %s (%d pts)", i+1, entry.Name, entry.Count)
		if !entry.Visible {
			line += " off"
		}
		text.Draw(screen, line, face, margin+swatchSize+6, y+swatchSize, label)
		y += rowHeight
	}

	o.drawDepthBar(screen, margin, y+margin)

	if o.status != "" {
		sh := screen.Bounds().Dy()
		text.Draw(screen, o.status, face, margin, sh-margin, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
}

// drawDepthBar paints the vertical depth gradient with its range labels,
// shallowest on top.
func (o *Overlay) drawDepthBar(screen *ebiten.Image, x, y int) {
	const (
		barWidth  = 10
		barHeight = 64
	)
	face := basicfont.Face7x13
	for i := 0; i < barHeight; i++ {
		t := 1 - float64(i)/float64(barHeight-1)
		o.fillRect(screen, x, y+i, barWidth, 1, render.DepthColor(t))
	}
	gray := color.RGBA{R: 180, G: 180, B: 190, A: 255}
	text.Draw(screen, fmt.Sprintf("%.0f", o.maxDepth), face, x+barWidth+6, y+10, gray)
	text.Draw(screen, fmt.Sprintf("%.0f", o.minDepth), face, x+barWidth+6, y+barHeight, gray)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
