package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridflood/flood"
	"github.com/katalvlaran/gridflood/grid"
)

// ErrInvalidGrid is returned when the input is not a valid analysis grid
// (empty, or rows of differing lengths). It wraps the specific grid error.
var ErrInvalidGrid = errors.New("analysis: invalid grid input")

// Analysis owns the outputs of one flood over one grid: the distance
// field, the direction field, and the global reachability flag.
// It is immutable after construction.
type Analysis struct {
	grid  *grid.Grid
	field *flood.Result
}

// Analyze validates cells, floods the resulting grid once, and returns
// the frozen Analysis. Flood Options (hooks) pass through unchanged.
// Returns ErrInvalidGrid if cells is empty or non-rectangular; no partial
// state is produced.
// Complexity: O(rows×cols) time and memory.
func Analyze(cells [][]int, opts ...flood.Option) (*Analysis, error) {
	g, err := grid.New(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}
	field, err := flood.Flood(g, opts...)
	if err != nil {
		return nil, err
	}

	return &Analysis{grid: g, field: field}, nil
}

// Grid returns the validated, immutable input grid.
func (a *Analysis) Grid() *grid.Grid { return a.grid }

// Distances returns the shortest hop count per cell, flood.Unreached for
// walls and cells no goal can reach.
func (a *Analysis) Distances() flood.DistanceField { return a.field.Distances }

// Directions returns the next-step tag per cell.
func (a *Analysis) Directions() flood.DirectionField { return a.field.Directions }

// Reachable reports whether every non-wall cell can reach some goal.
func (a *Analysis) Reachable() bool { return a.field.Reachable }

// Render formats the direction field as display characters, one line per
// grid row.
func (a *Analysis) Render() string { return a.field.Directions.Render() }

// Path returns the shortest path from (row, col) to the nearest goal as
// an ordered coordinate sequence, first element the start, last element a
// goal cell. Returns flood.ErrNoPath for a wall, unreachable, or
// out-of-bounds start; never a partial path.
// Complexity: O(distance) per query; the result is not cached.
func (a *Analysis) Path(row, col int) ([]grid.Coord, error) {
	return a.field.PathFrom(row, col)
}
