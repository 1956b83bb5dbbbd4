// Package analysis is the one-call entry point of gridflood: validate a
// raw [][]int grid, flood it once, and hand back an immutable Analysis
// exposing the three flood outputs plus path queries bound to them.
//
// What:
//
//   - Analyze(cells) validates the input (rejecting empty or jagged grids
//     with ErrInvalidGrid), runs one multi-source flood, and freezes the
//     result.
//   - Analysis exposes Distances, Directions, Reachable, Render, and
//     Path(row, col) — the programmatic boundary an editor or game layer
//     calls once per grid edit.
//
// Why:
//
//   - Consumers should not compose grid construction, flood, and path
//     lookup by hand on every edit; Analyze is the whole engine in one
//     call, and an Analysis value is safe to share and to discard.
//
// Lifetime:
//
//	An Analysis is computed eagerly and never mutated. Edit the grid →
//	call Analyze again → replace the old value. Analyses of different
//	grids are fully independent and may be computed concurrently.
//
// Errors:
//
//   - ErrInvalidGrid: input is empty, jagged, or otherwise unusable;
//     nothing was computed.
//   - flood.ErrNoPath: Path was asked for a wall, unreachable, or
//     out-of-bounds start.
package analysis
