//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"depositlab/internal/app"
	"depositlab/internal/core"
	_ "depositlab/internal/deposits/mineral"
	_ "depositlab/internal/deposits/petroleum"

	"github.com/hajimehoshi/ebiten/v2"
)

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

	game, err := app.New(src, cfg)
	if err != nil {
		log.Fatalf("generating %s: %v", cfg.Source, err)
	}

	ebiten.SetWindowTitle("depositlab — " + src.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(320*cfg.Scale+220, 240*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
