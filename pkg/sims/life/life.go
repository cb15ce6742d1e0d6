package life

import (
	"lifegrid/pkg/core"
)

// Life implements Conway's Game of Life on a bounded, non-wrapping grid.
// Cells past any edge count as dead.
type Life struct {
	w, h int
	cur  *core.Grid
	nxt  *core.Grid

	paused     bool
	generation int
}

// New returns a Life simulation with the provided dimensions and all cells dead.
func New(w, h int) *Life {
	cur := core.NewGrid(w, h)
	return &Life{w: cur.W, h: cur.H, cur: cur, nxt: core.NewGrid(cur.W, cur.H)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current generation in row-major order. Callers must not
// write to it; use SetCell instead.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// IsAlive reports whether the cell at (x, y) is alive. Off-grid cells are dead.
func (l *Life) IsAlive(x, y int) bool { return l.cur.Get(x, y) }

// SetCell sets the current state of (x, y). Off-grid coordinates are ignored;
// the return value reports whether the write happened.
func (l *Life) SetCell(x, y int, alive bool) bool { return l.cur.Set(x, y, alive) }

// Paused reports whether automatic stepping is suspended.
func (l *Life) Paused() bool { return l.paused }

// TogglePause flips between paused and running without touching the grid.
func (l *Life) TogglePause() { l.paused = !l.paused }

// Generation returns the number of steps taken since creation or Clear.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.nxt.Clear()
	l.generation = 0
}

// AliveNeighbors counts live cells in the Moore neighborhood of (x, y).
func (l *Life) AliveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.cur.Get(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			idx := y*l.w + x
			neighbors := l.AliveNeighbors(x, y)
			alive := cur[idx]
			nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.nxt.Clear()
	l.generation++
}
