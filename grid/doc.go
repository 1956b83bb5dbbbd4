// Package grid defines the immutable rectangular integer grid consumed by
// the gridflood engine, together with its cell semantics.
//
// What:
//
//   - Grid wraps a non-empty, rectangular [][]int and deep-copies it on
//     construction, so the analysis input can never be mutated afterwards.
//   - Coord is the (Row, Col) coordinate used across the module.
//   - Cell classification: a value < 0 is a wall, the value GoalValue (1) is
//     a goal, any other non-negative value is an open cell.
//
// Why:
//
//   - The flood engine's correctness rests on the grid being rectangular and
//     frozen for the duration of the analysis; Grid enforces both at the
//     boundary so the algorithms never re-validate.
//
// Complexity:
//
//   - New: O(rows×cols) time and memory (deep copy).
//   - At, InBounds, IsWall, IsGoal, IsOpen: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
