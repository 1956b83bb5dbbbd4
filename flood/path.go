package flood

import (
	"fmt"

	"github.com/katalvlaran/gridflood/grid"
)

// PathFrom reconstructs the shortest path from (row, col) to the nearest
// goal by following the direction field forward. The returned sequence
// starts at (row, col), ends on a goal cell, and each consecutive pair of
// coordinates differs by exactly one cardinal step; its length is
// Distances[row][col]+1 coordinates. A start that is itself a goal yields
// a single-element path.
//
// Returns ErrNoPath if the start cell is a wall, has no route to any goal,
// or lies out of bounds. The result is never partial.
// Complexity: O(distance) time and memory per query.
func (r *Result) PathFrom(row, col int) ([]grid.Coord, error) {
	if row < 0 || row >= len(r.Directions) || col < 0 || col >= len(r.Directions[row]) {
		return nil, fmt.Errorf("%w: (%d,%d) is out of bounds", ErrNoPath, row, col)
	}
	switch r.Directions[row][col] {
	case Wall:
		return nil, fmt.Errorf("%w: (%d,%d) is a wall", ErrNoPath, row, col)
	case None:
		return nil, fmt.Errorf("%w: (%d,%d) is unreachable", ErrNoPath, row, col)
	}

	path := make([]grid.Coord, 0, r.Distances[row][col]+1)
	path = append(path, grid.Coord{Row: row, Col: col})
	for r.Directions[row][col] != Goal {
		dr, dc := r.Directions[row][col].Offset()
		row, col = row+dr, col+dc
		path = append(path, grid.Coord{Row: row, Col: col})
	}

	return path, nil
}
