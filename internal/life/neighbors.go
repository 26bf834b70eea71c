package life

import "rewind-ca/internal/core"

// mooreOffsets lists the eight signed deltas of the Moore neighborhood.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NeighborCount returns the number of live cells in the Moore neighborhood of
// (x, y). Edges do not wrap: offsets that leave the grid are skipped, so
// boundary cells simply have fewer neighbors.
func NeighborCount(g *core.Grid, x, y int) int {
	count := 0
	for _, d := range mooreOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.AliveAt(nx, ny) {
			count++
		}
	}
	return count
}
