package grid

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(rows×cols) time and memory.
func New(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	own := make([][]int, rows)
	for r := 0; r < rows; r++ {
		own[r] = make([]int, cols)
		copy(own[r], cells[r])
	}

	return &Grid{rows: rows, cols: cols, cells: own}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the raw value stored at (r,c). The coordinate must be in
// bounds; callers gate with InBounds.
// Complexity: O(1).
func (g *Grid) At(r, c int) int {
	return g.cells[r][c]
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// IsWall reports whether the cell at (r,c) is impassable (value < 0).
func (g *Grid) IsWall(r, c int) bool {
	return g.cells[r][c] < 0
}

// IsGoal reports whether the cell at (r,c) is a goal (value == GoalValue).
func (g *Grid) IsGoal(r, c int) bool {
	return g.cells[r][c] == GoalValue
}

// IsOpen reports whether the cell at (r,c) is an ordinary passable cell:
// non-negative and not a goal.
func (g *Grid) IsOpen(r, c int) bool {
	return g.cells[r][c] >= 0 && g.cells[r][c] != GoalValue
}
