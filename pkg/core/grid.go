package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Grid stores a 2D grid of boolean cells in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-false grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the cell at (x, y). Coordinates outside the grid read as false.
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y) and reports whether the coordinates were in range.
func (g *Grid) Set(x, y int, v bool) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[y*g.W+x] = v
	return true
}

// Count returns the number of true cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Clear fills the grid with false.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
