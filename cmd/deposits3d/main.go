//go:build raylib

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"depositlab/internal/app"
	"depositlab/internal/core"
	_ "depositlab/internal/deposits/mineral"
	_ "depositlab/internal/deposits/petroleum"
	"depositlab/internal/terrain"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/geo/r3"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	fogStart = 150.0
	fogEnd   = 400.0

	// Petroleum depths run to kilometers; compress them so the basin fits
	// the viewport alongside the terrain.
	petroleumZScale = 0.02
)

// colorLerp interpolates between two colors, used for the distance fog.
func colorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sources()[cfg.Source]
	if !ok {
		log.Fatalf("unknown source %q", cfg.Source)
	}
	src, err := factory(cfg.GeneratorMap())
	if err != nil {
		log.Fatalf("configuring %s: %v", cfg.Source, err)
	}
	scene, err := app.NewScene(src)
	if err != nil {
		log.Fatalf("generating %s: %v", cfg.Source, err)
	}

	zScale := float32(1.0)
	if cfg.Source == "petroleum" {
		zScale = petroleumZScale
	}

	surface := terrain.NewSurface(4, 0.55, cfg.Seed)
	ground := surface.Grid(60, 24)

	backgroundColor := rl.NewColor(10, 10, 20, 255)
	rl.InitWindow(screenWidth, screenHeight, "depositlab 3D | Q/E rotate, wheel zoom, R regen, S shuffle")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective
	camera.Fovy = 55
	camera.Target = rl.NewVector3(0, 0, 0)
	camPos := rl.NewVector3(90, 70, 90)

	orbit := core.NewFixedStep(cfg.TPS)
	seed := cfg.Seed

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			camPos = rl.Vector3RotateByAxisAngle(camPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			camPos = rl.Vector3RotateByAxisAngle(camPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			factor := 1 - wheel*0.05
			camPos = rl.Vector3Scale(camPos, factor)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			regenerate(scene, seed)
		}
		if rl.IsKeyPressed(rl.KeyS) {
			seed = time.Now().UnixNano()
			regenerate(scene, seed)
			surface = terrain.NewSurface(4, 0.55, seed)
			ground = surface.Grid(60, 24)
		}
		if orbit.ShouldStep() {
			camPos = rl.Vector3RotateByAxisAngle(camPos, camera.Up, 0.004)
		}
		camera.Position = camPos

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		drawGround(ground, camera, backgroundColor)

		for _, layer := range scene.Layers() {
			if !layer.Visible {
				continue
			}
			base := rl.NewColor(layer.Color.R, layer.Color.G, layer.Color.B, 255)
			for _, p := range layer.Points {
				// World XY is the ground plane; raylib Y is up.
				pos := rl.NewVector3(float32(p.X), float32(p.Z)*zScale, float32(p.Y))
				distance := rl.Vector3Distance(camera.Position, pos)
				fog := (distance - fogStart) / (fogEnd - fogStart)
				if fog < 0 {
					fog = 0
				}
				if fog > 1 {
					fog = 1
				}
				rl.DrawCube(pos, 0.8, 0.8, 0.8, colorLerp(base, backgroundColor, fog))
			}
		}

		rl.EndMode3D()

		status := fmt.Sprintf("%s  seed %d", src.Name(), seed)
		if zScale != 1 {
			status += fmt.Sprintf("  depth x%.2f", zScale)
		}
		rl.DrawText(status, 10, 10, 20, rl.White)
		rl.DrawText("Q/E rotate | wheel zoom | R regen | S shuffle", 10, 36, 16, rl.Gray)
		rl.DrawFPS(10, 60)
		rl.EndDrawing()
	}

	rl.CloseWindow()
}

func regenerate(scene *app.Scene, seed int64) {
	if setter, ok := scene.Source().(core.IntParameterSetter); ok {
		setter.SetIntParameter("seed", int(seed))
	}
	if err := scene.Regenerate(); err != nil {
		log.Printf("regenerate: %v", err)
	}
}

// drawGround sketches the terrain surface as a fogged wireframe.
func drawGround(grid [][]r3.Vector, camera rl.Camera3D, bg rl.Color) {
	lineColor := rl.NewColor(60, 90, 70, 255)
	toVec := func(p r3.Vector) rl.Vector3 {
		return rl.NewVector3(float32(p.X), float32(p.Z), float32(p.Y))
	}
	fogged := func(a rl.Vector3) rl.Color {
		distance := rl.Vector3Distance(camera.Position, a)
		fog := (distance - fogStart) / (fogEnd - fogStart)
		if fog < 0 {
			fog = 0
		}
		if fog > 1 {
			fog = 1
		}
		return colorLerp(lineColor, bg, fog)
	}
	for i, row := range grid {
		for j := range row {
			a := toVec(row[j])
			if j+1 < len(row) {
				rl.DrawLine3D(a, toVec(row[j+1]), fogged(a))
			}
			if i+1 < len(grid) {
				rl.DrawLine3D(a, toVec(grid[i+1][j]), fogged(a))
			}
		}
	}
}
