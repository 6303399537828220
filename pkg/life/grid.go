package life

import "slices"

// grid stores a 2D matrix of cell states in row-major order. Coordinates outside
// the matrix are never stored.
type grid struct {
	rows, cols int
	data       []bool
}

func newGrid(rows, cols int) grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return grid{rows: rows, cols: cols, data: make([]bool, rows*cols)}
}

func (g grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// index returns the linear slice index for an in-bounds (row, col).
func (g grid) index(row, col int) int { return row*g.cols + col }

func (g grid) clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// matrix returns an independent [row][col] copy.
func (g grid) matrix() [][]bool {
	out := make([][]bool, g.rows)
	for r := range out {
		out[r] = slices.Clone(g.data[r*g.cols : (r+1)*g.cols])
	}
	return out
}

func (g grid) clone() grid {
	return grid{rows: g.rows, cols: g.cols, data: slices.Clone(g.data)}
}
