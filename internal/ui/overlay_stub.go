//go:build !ebiten

package ui

import "image/color"

// LegendEntry mirrors the GUI legend row in headless builds.
type LegendEntry struct {
	Name    string
	Color   color.RGBA
	Count   int
	Visible bool
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// SetEntries is a no-op in headless builds.
func (o *Overlay) SetEntries([]LegendEntry) {}

// SetStatus is a no-op in headless builds.
func (o *Overlay) SetStatus(string) {}

// SetDepthRange is a no-op in headless builds.
func (o *Overlay) SetDepthRange(float64, float64) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
