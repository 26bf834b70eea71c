package life

import (
	"testing"

	"rewind-ca/internal/core"
)

func makeGrid(w, h int, live ...[2]int) *core.Grid {
	cells := make([]bool, w*h)
	for _, p := range live {
		cells[p[1]*w+p[0]] = true
	}
	return core.GridFromCells(w, h, cells)
}

func TestNeighborCountCenter(t *testing.T) {
	g := makeGrid(3, 3,
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
		[2]int{0, 1}, [2]int{2, 1},
		[2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2},
	)
	if got := NeighborCount(g, 1, 1); got != 8 {
		t.Fatalf("center of full ring should count 8, got %d", got)
	}
}

func TestNeighborCountCornerExaminesOnlyInBoundsCells(t *testing.T) {
	// All three in-bounds neighbors of the (0,0) corner are alive, as is a
	// far cell that must not be counted.
	g := makeGrid(5, 5, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{4, 4})
	if got := NeighborCount(g, 0, 0); got != 3 {
		t.Fatalf("corner should count exactly its 3 in-bounds neighbors, got %d", got)
	}

	// The opposite corner sees none of them.
	if got := NeighborCount(g, 4, 0); got != 0 {
		t.Fatalf("empty corner should count 0, got %d", got)
	}
}

func TestNeighborCountDoesNotWrap(t *testing.T) {
	// A live cell on the right edge must not appear as a neighbor of the
	// left edge on the same row.
	g := makeGrid(5, 3, [2]int{4, 1})
	if got := NeighborCount(g, 0, 1); got != 0 {
		t.Fatalf("edges must not wrap, got %d neighbors", got)
	}
	if got := NeighborCount(g, 3, 1); got != 1 {
		t.Fatalf("adjacent cell should count 1, got %d", got)
	}
}

func TestNeighborCountEdgeCell(t *testing.T) {
	g := makeGrid(4, 4,
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
		[2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2},
	)
	// (1,1) has six live neighbors; (1,0) on the top edge sees only the two
	// beside it.
	if got := NeighborCount(g, 1, 1); got != 6 {
		t.Fatalf("expected 6 neighbors, got %d", got)
	}
	if got := NeighborCount(g, 1, 0); got != 2 {
		t.Fatalf("top-edge cell should count 2, got %d", got)
	}
}
