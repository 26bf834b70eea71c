package core

import "testing"

func TestNewGridRejectsEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); err == nil {
			t.Fatalf("NewGrid(%d, %d) should fail", dims[0], dims[1])
		}
	}
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	g, err := NewGrid(7, 3)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 21 {
		t.Fatalf("expected 21 cells, got %d", g.Len())
	}
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coords(i)
		if x < 0 || x >= g.W() || y < 0 || y >= g.H() {
			t.Fatalf("index %d decoded to out-of-range (%d,%d)", i, x, y)
		}
		if back := g.Index(x, y); back != i {
			t.Fatalf("index %d -> (%d,%d) -> %d", i, x, y, back)
		}
	}
}

func TestRowMajorAddressingOnNonSquareGrid(t *testing.T) {
	cells := make([]bool, 4*2)
	g := GridFromCells(4, 2, cells)
	if got := g.Index(3, 1); got != 7 {
		t.Fatalf("Index(3,1) on 4x2 grid = %d, want 7", got)
	}
	x, y := g.Coords(5)
	if x != 1 || y != 1 {
		t.Fatalf("Coords(5) on 4x2 grid = (%d,%d), want (1,1)", x, y)
	}
}

func TestInBounds(t *testing.T) {
	g, _ := NewGrid(3, 3)
	for _, bad := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if g.InBounds(bad[0], bad[1]) {
			t.Fatalf("(%d,%d) should be out of bounds", bad[0], bad[1])
		}
	}
	if !g.InBounds(0, 0) || !g.InBounds(2, 2) {
		t.Fatal("corner cells should be in bounds")
	}
}

func TestGridFromCellsPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched cell slice")
		}
	}()
	GridFromCells(3, 3, make([]bool, 8))
}

func TestPopulationAndEqual(t *testing.T) {
	cells := make([]bool, 9)
	cells[4] = true
	cells[8] = true
	a := GridFromCells(3, 3, cells)
	if a.Population() != 2 {
		t.Fatalf("expected population 2, got %d", a.Population())
	}

	same := make([]bool, 9)
	same[4] = true
	same[8] = true
	if !a.Equal(GridFromCells(3, 3, same)) {
		t.Fatal("identical grids should compare equal")
	}

	differ := make([]bool, 9)
	differ[0] = true
	if a.Equal(GridFromCells(3, 3, differ)) {
		t.Fatal("differing grids should not compare equal")
	}
}
