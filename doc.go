// Package gridflood analyzes rectangular integer grids of walls, open cells
// and goal cells, computing for every cell the shortest distance to the
// nearest goal and the first step of a shortest path toward it.
//
// 🚀 What is gridflood?
//
//	A small, pure-Go engine built around one idea: flood the grid from every
//	goal at once, then read paths straight out of the resulting field.
//		• grid/     — immutable rectangular Grid, validation, cell semantics
//		• flood/    — multi-source BFS producing distance & direction fields,
//		              plus path reconstruction over the direction field
//		• analysis/ — one-call wrapper: Analyze(grid) → fields, reachability,
//		              and Path(row, col) bound to the computed field
//
// ✨ Why choose gridflood?
//
//   - Deterministic — fixed seeding and expansion order, reproducible ties
//   - One pass — O(rows×cols) flood, O(distance) per path query
//   - Pure values — immutable inputs and outputs, safe to share across
//     goroutines without locks
//
// Cell semantics: a negative value is a wall, the value 1 is a goal, any
// other non-negative value is an open cell. Direction tags map 1:1 to the
// display characters '^', 'v', '<', '>', 'X' (goal), '#' (wall) and ' '
// (unreachable).
//
// Quick ASCII example:
//
//	grid            distances       directions
//	5  -1   1        6  -1   0       v  #  X
//	7  -1   7        5  -1   1       v  #  ^
//	3   3   3        4   3   2       >  >  ^
//
// Start at the top-left cell, follow the arrows, reach the goal in six moves.
// Dive into each subpackage's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/gridflood
package gridflood
