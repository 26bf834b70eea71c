//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"rewind-ca/internal/app"
	"rewind-ca/internal/core"
	"rewind-ca/internal/history"
	"rewind-ca/internal/life"
	"rewind-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := life.Seed(cfg.SeedConfig(), core.NewRNG(cfg.Seed))
	if err != nil {
		log.Fatal(err)
	}
	hist, err := history.New(history.Snapshot{Gen: 0, Grid: grid}, cfg.Capacity)
	if err != nil {
		log.Fatal(err)
	}

	engine := life.NewEngine()
	game := app.New(hist, engine, cfg)

	ebiten.SetWindowTitle("cells — PAUSED")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale+ui.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
