package life

import (
	"fmt"

	"rewind-ca/internal/core"
)

// DefaultSpawnChance is the reference per-cell spawn probability.
const DefaultSpawnChance = 0.45 / 4.2

// SeedConfig controls initial grid generation.
type SeedConfig struct {
	Width  int
	Height int

	// Radius bounds the centered box cells may spawn in: a cell is eligible
	// when its absolute distance from the grid center is below Radius on both
	// axes. Cells outside the box are always dead.
	Radius int

	// SpawnChance is the independent Bernoulli probability for each eligible
	// cell. Must lie in [0, 1].
	SpawnChance float64
}

// DefaultSeedConfig returns the standard configuration.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Width:       100,
		Height:      100,
		Radius:      50,
		SpawnChance: DefaultSpawnChance,
	}
}

// Validate reports the first configuration problem, if any.
func (c SeedConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("seed dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Radius < 0 {
		return fmt.Errorf("seed radius must be non-negative, got %d", c.Radius)
	}
	if c.SpawnChance < 0 || c.SpawnChance > 1 {
		return fmt.Errorf("spawn chance must be in [0,1], got %g", c.SpawnChance)
	}
	return nil
}

// Seed builds the generation-zero grid. Each cell inside the centered
// bounding box draws an independent trial at cfg.SpawnChance; everything
// outside the box stays dead.
func Seed(cfg SeedConfig, rng *core.RNG) (*core.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cx, cy := cfg.Width/2, cfg.Height/2
	cells := make([]bool, cfg.Width*cfg.Height)
	for i := range cells {
		x, y := i%cfg.Width, i/cfg.Width
		if abs(cx-x) >= cfg.Radius || abs(cy-y) >= cfg.Radius {
			continue
		}
		cells[i] = rng.Chance(cfg.SpawnChance)
	}
	return core.GridFromCells(cfg.Width, cfg.Height, cells), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
