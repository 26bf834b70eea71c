package core

import "fmt"

// Grid stores a 2D grid of boolean cell states in row-major order. A Grid is
// immutable once constructed; the stepper and seeder build a fresh cell slice
// and wrap it rather than writing into an existing grid.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// GridFromCells wraps an existing cell slice. The grid takes ownership of the
// slice; the caller must not retain a reference to it. The slice length must
// equal w*h — a mismatch is a caller logic defect and panics.
func GridFromCells(w, h int, cells []bool) *Grid {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		panic(fmt.Sprintf("grid %dx%d cannot wrap %d cells", w, h, len(cells)))
	}
	return &Grid{w: w, h: h, cells: cells}
}

// W returns the grid width.
func (g *Grid) W() int { return g.w }

// H returns the grid height.
func (g *Grid) H() int { return g.h }

// Len returns the total cell count.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Coords returns the (x, y) coordinates for a linear index.
func (g *Grid) Coords(i int) (int, int) { return i % g.w, i / g.w }

// InBounds reports whether (x, y) addresses a valid cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Alive reports the state of the cell at linear index i.
func (g *Grid) Alive(i int) bool { return g.cells[i] }

// AliveAt reports the state of the cell at (x, y).
func (g *Grid) AliveAt(x, y int) bool { return g.cells[g.Index(x, y)] }

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have identical dimensions and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, alive := range g.cells {
		if alive != other.cells[i] {
			return false
		}
	}
	return true
}
