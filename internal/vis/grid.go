package vis

// Grid is a coded board grid: a row-major integer matrix whose values are
// atlas indices (or the blank sentinel -1 for dashboard rows).
type Grid struct {
	Rows  int
	Cols  int
	Cells []int // row-major: index = row*Cols + col
}

// NewGrid creates a zero-filled grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Rows: rows, Cols: cols, Cells: make([]int, rows*cols)}
}

// gridFromRows copies a [][]int board into a fresh Grid. The input is never
// aliased, so later writes to the grid cannot touch the observation.
func gridFromRows(rows [][]int) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		copy(g.Cells[r*g.Cols:(r+1)*g.Cols], row)
	}
	return g
}

// inBounds returns true if (row, col) is within the grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the value at (row, col), or 0 if out of bounds.
func (g *Grid) At(row, col int) int {
	if !g.inBounds(row, col) {
		return 0
	}
	return g.Cells[row*g.Cols+col]
}

// Set writes the value at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col, v int) {
	if !g.inBounds(row, col) {
		return
	}
	g.Cells[row*g.Cols+col] = v
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int) {
	for i := range g.Cells {
		g.Cells[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Cells: make([]int, len(g.Cells))}
	copy(out.Cells, g.Cells)
	return out
}

// Equal reports whether two grids have identical shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, v := range g.Cells {
		if other.Cells[i] != v {
			return false
		}
	}
	return true
}
