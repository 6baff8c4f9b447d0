//go:build !ebiten

package ui

import "depositlab/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Source, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Changed always reports false in the headless build.
func (h *HUD) Changed() bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
