// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridflood.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// GoalValue is the cell value marking a goal. Every cell holding exactly
// this value is a flood source at distance zero.
const GoalValue = 1

// Coord identifies a single cell by row and column, zero-based.
type Coord struct {
	Row, Col int
}

// Grid is an immutable rectangular matrix of signed integers.
// Cell semantics: value < 0 is a wall, value == GoalValue is a goal,
// any other non-negative value is an open cell.
type Grid struct {
	rows, cols int
	cells      [][]int
}
