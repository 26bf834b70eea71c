package app

import (
	"flag"

	"rewind-ca/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	Capacity    int
	Radius      int
	SpawnChance float64
	TPS         int
	Seed        int64
	Scale       int
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{
		Width:       100,
		Height:      100,
		Capacity:    10000,
		Radius:      50,
		SpawnChance: life.DefaultSpawnChance,
		TPS:         60,
		Seed:        42,
		Scale:       8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Capacity, "capacity", c.Capacity, "maximum retained snapshots")
	fs.IntVar(&c.Radius, "radius", c.Radius, "seed bounding box radius")
	fs.Float64Var(&c.SpawnChance, "spawn", c.SpawnChance, "per-cell spawn probability in [0,1]")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second while playing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for initial grid generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
}

// SeedConfig derives the seeder configuration from the flag values.
func (c *Config) SeedConfig() life.SeedConfig {
	return life.SeedConfig{
		Width:       c.Width,
		Height:      c.Height,
		Radius:      c.Radius,
		SpawnChance: c.SpawnChance,
	}
}
