package life

import "rewind-ca/internal/core"

// Step advances the grid by one generation under the given rule engine and
// returns the result as a fresh grid. Every cell's observation is taken from
// the input grid, so the update is simultaneous: the input is never mutated
// and later cells do not see earlier results. Step is pure — the same grid
// and engine always yield the same output.
func Step(g *core.Grid, e *Engine) *core.Grid {
	next := make([]bool, g.Len())
	for i := range next {
		x, y := g.Coords(i)
		obs := Observation{
			X:         x,
			Y:         y,
			Alive:     g.Alive(i),
			Neighbors: NeighborCount(g, x, y),
		}
		next[i] = e.Apply(g, obs)
	}
	return core.GridFromCells(g.W(), g.H(), next)
}
