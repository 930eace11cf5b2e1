package game

import (
	"github.com/T0rrag/SnakeCAD/internal/core"
)

// freeCells tracks the unoccupied cells of the board. It pairs a slice with
// an index map so occupy/release are O(1) and food placement is a single
// uniform draw instead of unbounded rejection sampling. The set shrinks to
// empty exactly when the snake fills the board, which gives the session an
// explicit board-full outcome instead of a hung placement loop.
type freeCells struct {
	cells []core.Point
	index map[core.Point]int
}

// newFreeCells builds a set containing every cell of a width x height grid.
func newFreeCells(width, height int) *freeCells {
	f := &freeCells{
		cells: make([]core.Point, 0, width*height),
		index: make(map[core.Point]int, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Point{X: x, Y: y}
			f.index[p] = len(f.cells)
			f.cells = append(f.cells, p)
		}
	}
	return f
}

// Len returns the number of free cells.
func (f *freeCells) Len() int {
	return len(f.cells)
}

// Contains reports whether the cell is free.
func (f *freeCells) Contains(p core.Point) bool {
	_, ok := f.index[p]
	return ok
}

// Occupy removes a cell from the set using swap-remove.
// Occupying an already occupied cell is a no-op.
func (f *freeCells) Occupy(p core.Point) {
	i, ok := f.index[p]
	if !ok {
		return
	}
	last := len(f.cells) - 1
	moved := f.cells[last]
	f.cells[i] = moved
	f.index[moved] = i
	f.cells = f.cells[:last]
	delete(f.index, p)
}

// Release returns a cell to the set.
// Releasing an already free cell is a no-op.
func (f *freeCells) Release(p core.Point) {
	if _, ok := f.index[p]; ok {
		return
	}
	f.index[p] = len(f.cells)
	f.cells = append(f.cells, p)
}

// Sample draws a uniformly random free cell. Returns false when the set is
// empty (board full).
func (f *freeCells) Sample(rng *LCG) (core.Point, bool) {
	if len(f.cells) == 0 {
		return core.Point{}, false
	}
	return f.cells[rng.Intn(len(f.cells))], true
}
