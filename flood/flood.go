// Package flood implements the multi-source breadth-first flood over a
// grid.Grid, producing distance and direction fields plus a global
// reachability flag in a single pass.
package flood

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridflood/grid"
)

// expandOrder fixes the neighbor expansion sequence: increasing row,
// decreasing row, increasing column, decreasing column. Each slot names
// the tag the discovered neighbor receives; the neighbor lies one step
// opposite the tag's offset from the popped cell, so the tag points from
// the neighbor back toward the popped cell — one hop closer to a goal.
var expandOrder = [4]Direction{Up, Down, Left, Right}

// cellItem pairs a cell coordinate with its flood distance.
type cellItem struct {
	at   grid.Coord
	dist int
}

// walker encapsulates mutable flood state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	queue *queue.Queue[cellItem]
	res   *Result
}

// Flood runs a multi-source breadth-first search over g, seeded from every
// goal cell at distance 0, applying any number of functional Options.
// It always terminates and always produces a complete Result for any
// constructed grid; the only error is ErrGridNil for a nil pointer.
// Complexity: O(rows×cols) time and memory.
func Flood(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		queue: queue.New[cellItem](),
		res:   newResult(g.Rows(), g.Cols()),
	}

	w.seed()
	w.loop()
	w.res.Reachable = w.res.Directions.complete()

	return w.res, nil
}

// newResult allocates the two fields: distances all Unreached,
// directions all None.
func newResult(rows, cols int) *Result {
	dist := make(DistanceField, rows)
	dirs := make(DirectionField, rows)
	for r := 0; r < rows; r++ {
		dist[r] = make([]int, cols)
		dirs[r] = make([]Direction, cols)
		for c := 0; c < cols; c++ {
			dist[r][c] = Unreached
		}
	}

	return &Result{Distances: dist, Directions: dirs}
}

// seed scans the grid once in row-major order, tags walls, and enqueues
// every goal cell at distance 0. The scan order is the deterministic
// tie-break between equidistant goals.
func (w *walker) seed() {
	for r := 0; r < w.grid.Rows(); r++ {
		for c := 0; c < w.grid.Cols(); c++ {
			switch {
			case w.grid.IsWall(r, c):
				w.res.Directions[r][c] = Wall
			case w.grid.IsGoal(r, c):
				w.res.Distances[r][c] = 0
				w.res.Directions[r][c] = Goal
				w.enqueue(grid.Coord{Row: r, Col: c}, 0)
			}
		}
	}
}

// enqueue reports the assignment to OnEnqueue and adds the cell to the
// work queue. The cell's field entries are already written by the caller.
func (w *walker) enqueue(at grid.Coord, dist int) {
	w.opts.OnEnqueue(at, dist)
	w.queue.Enqueue(cellItem{at: at, dist: dist})
}

// loop drains the FIFO queue, expanding each popped cell's four cardinal
// neighbors in expandOrder. A neighbor is claimed on first visit only
// (Distances still Unreached), which is what makes first-visit distance
// the exact shortest distance.
func (w *walker) loop() {
	for !w.queue.Empty() {
		item := w.queue.Dequeue()
		w.opts.OnDequeue(item.at, item.dist)
		next := item.dist + 1
		for _, tag := range expandOrder {
			dr, dc := tag.Offset()
			nr, nc := item.at.Row-dr, item.at.Col-dc
			if !w.grid.InBounds(nr, nc) || w.grid.IsWall(nr, nc) {
				continue
			}
			if w.res.Distances[nr][nc] != Unreached {
				continue // already claimed (goals hold 0)
			}
			w.res.Distances[nr][nc] = next
			w.res.Directions[nr][nc] = tag
			w.enqueue(grid.Coord{Row: nr, Col: nc}, next)
		}
	}
}

// complete reports whether every cell was resolved, i.e. no None tag
// remains. A grid with zero open non-goal cells is vacuously complete.
func (f DirectionField) complete() bool {
	for _, row := range f {
		for _, d := range row {
			if d == None {
				return false
			}
		}
	}

	return true
}
