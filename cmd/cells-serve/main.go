package main

import (
	"flag"
	"log"

	"rewind-ca/internal/core"
	"rewind-ca/internal/history"
	"rewind-ca/internal/life"
	"rewind-ca/internal/stream"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "address for the websocket server")
		width       = flag.Int("width", 100, "grid width in cells")
		height      = flag.Int("height", 100, "grid height in cells")
		capacity    = flag.Int("capacity", 10000, "maximum retained snapshots")
		radius      = flag.Int("radius", 50, "seed bounding box radius")
		spawnChance = flag.Float64("spawn", life.DefaultSpawnChance, "per-cell spawn probability in [0,1]")
		tps         = flag.Int("tps", 60, "simulation ticks per second while playing")
		seed        = flag.Int64("seed", 42, "seed for initial grid generation")
	)
	flag.Parse()

	grid, err := life.Seed(life.SeedConfig{
		Width:       *width,
		Height:      *height,
		Radius:      *radius,
		SpawnChance: *spawnChance,
	}, core.NewRNG(*seed))
	if err != nil {
		log.Fatal(err)
	}
	hist, err := history.New(history.Snapshot{Gen: 0, Grid: grid}, *capacity)
	if err != nil {
		log.Fatal(err)
	}

	hub := stream.NewHub()
	go hub.Run()

	loop := stream.NewLoop(hub, hist, life.NewEngine(), *tps)
	go loop.Run()

	if err := stream.ListenAndServe(*addr, hub); err != nil {
		log.Fatal(err)
	}
}
