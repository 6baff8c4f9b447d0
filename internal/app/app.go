//go:build ebiten

package app

import (
	"fmt"
	"math"
	"time"

	"depositlab/internal/core"
	"depositlab/internal/render"
	"depositlab/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	canvasW  = 320
	canvasH  = 240
	hudWidth = 220
)

// Game adapts a deposit scene to the ebiten.Game interface: it orbits the
// camera around the generated clouds and routes key and HUD input back
// into the generator.
type Game struct {
	scene   *Scene
	cam     render.Camera
	painter *render.PointPainter
	blitter *render.Blitter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale     int
	seed      int64
	paused    bool
	stepOnce  bool
	showHUD   bool
	modeIndex int
}

// New constructs a Game for the provided source.
func New(src core.Source, cfg *Config) (*Game, error) {
	scene, err := NewScene(src)
	if err != nil {
		return nil, err
	}
	g := &Game{
		scene:   scene,
		painter: render.NewPointPainter(canvasW, canvasH),
		blitter: &render.Blitter{},
		hud:     ui.NewHUD(src, hudWidth),
		overlay: ui.NewOverlay(),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		showHUD: true,
	}
	g.frameCamera()
	g.cam.Pitch = 0.5
	return g, nil
}

// frameCamera centers the view on the scene and fits the zoom to it.
func (g *Game) frameCamera() {
	cx, cy, cz := g.scene.Center()
	g.cam.Center.X, g.cam.Center.Y, g.cam.Center.Z = cx, cy, cz
	g.cam.Zoom = render.FitZoom(g.scene.Extent(), canvasW, canvasH)
}

// Reset regenerates the scene with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	if setter, ok := g.scene.Source().(core.IntParameterSetter); ok {
		setter.SetIntParameter("seed", int(seed))
	}
	if err := g.scene.Regenerate(); err != nil {
		return err
	}
	g.frameCamera()
	return nil
}

// Update handles per-frame input and advances the orbit.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleMode()
	}

	g.handleCameraKeys()
	g.handleLayerKeys()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.showHUD && g.hud != nil {
		g.hud.Update(canvasW * g.scale)
		if g.hud.Changed() {
			if err := g.scene.Regenerate(); err != nil {
				return err
			}
			g.frameCamera()
		}
	}

	if !g.paused || g.stepOnce {
		g.cam.Yaw += 0.01
		g.stepOnce = false
	}
	return nil
}

func (g *Game) handleCameraKeys() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Yaw -= 0.03
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Yaw += 0.03
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Pitch = math.Min(g.cam.Pitch+0.02, math.Pi/2)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Pitch = math.Max(g.cam.Pitch-0.02, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.cam.Zoom *= 1.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.cam.Zoom /= 1.02
	}
}

func (g *Game) handleLayerKeys() {
	keys := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
		ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
		ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			g.scene.ToggleLayer(i)
		}
	}
}

// cycleMode advances the formation mode on sources that expose one.
func (g *Game) cycleMode() {
	setter, ok := g.scene.Source().(core.IntParameterSetter)
	if !ok {
		return
	}
	g.modeIndex++
	if !setter.SetIntParameter("mode", g.modeIndex) {
		return
	}
	if err := g.scene.Regenerate(); err == nil {
		g.frameCamera()
	}
}

// Draw renders the scene, overlay, and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	bounds := g.scene.Bounds()
	g.painter.Rasterize(g.scene.Layers(), g.cam, bounds.MinZ, bounds.MaxZ)
	g.blitter.Blit(screen, g.painter, g.scale)

	if g.overlay != nil {
		entries := make([]ui.LegendEntry, 0, len(g.scene.Layers()))
		for _, layer := range g.scene.Layers() {
			entries = append(entries, ui.LegendEntry{
				Name:    layer.Name,
				Color:   layer.Color,
				Count:   len(layer.Points),
				Visible: layer.Visible,
			})
		}
		g.overlay.SetEntries(entries)
		g.overlay.SetDepthRange(bounds.MinZ, bounds.MaxZ)
		g.overlay.SetStatus(fmt.Sprintf("seed %d  yaw %.2f  [Space] orbit  [R]egen  [S]huffle  [H]ud", g.seed, g.cam.Yaw))
		g.overlay.Draw(screen)
	}
	if g.showHUD && g.hud != nil {
		g.hud.Draw(screen, canvasW*g.scale, canvasH*g.scale)
	}
}

// Layout returns the logical screen size, HUD panel included.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := canvasW * g.scale
	if g.showHUD {
		w += hudWidth
	}
	return w, canvasH * g.scale
}
