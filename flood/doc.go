// Package flood computes, in one pass over a grid.Grid, the shortest
// distance from every cell to its nearest goal and the first step of a
// shortest path toward it, then reconstructs full paths on demand.
//
// What
//
//   - Flood runs a multi-source breadth-first search seeded from every goal
//     cell simultaneously and returns a Result containing:
//   - Distances: exact shortest hop count per cell (Unreached for walls
//     and cells no goal can reach; 0 on goals)
//   - Directions: per-cell tag naming the cardinal step one hop closer
//     to a goal, or a Wall/Goal/None sentinel
//   - Reachable: true iff no cell holds None
//   - Result.PathFrom walks the direction field from a start coordinate to
//     a goal, returning the full coordinate sequence.
//   - Supports observation hooks (OnEnqueue, OnDequeue) for tracing.
//
// Why
//
//   - One flood serves any number of path queries: each lookup is O(distance)
//     with no extra search, the field is shared freely across goroutines.
//   - Editors and games recompute per grid edit; the flood is O(rows×cols)
//     and allocation-light, cheap enough to run on every change.
//
// Determinism
//
//	Goals are seeded in row-major scan order and neighbors expand in a fixed
//	order (increasing row, decreasing row, increasing column, decreasing
//	column), so when several goals are equidistant the same shortest path is
//	reported on every run. Only the reported path depends on this order;
//	distances and reachability never do.
//
// Complexity (R = rows, C = cols)
//
//   - Flood:    O(R×C) time, O(R×C) memory (each cell enqueued at most once)
//   - PathFrom: O(distance) time per query
//
// Usage
//
//	res, err := flood.Flood(g)
//	if err != nil {
//	    // only ErrGridNil: Flood never fails on a constructed grid
//	}
//	fmt.Println(res.Directions.Render())
//	path, err := res.PathFrom(0, 0)
//	if err != nil {
//	    // ErrNoPath: start is a wall, unreachable, or out of bounds
//	}
//
// Errors
//
//   - ErrGridNil if the grid pointer is nil.
//   - ErrNoPath  if PathFrom starts on a wall, an unreachable cell, or an
//     out-of-bounds coordinate.
package flood
