// Package flood provides tunable options, field types, and error
// definitions for the multi-source flood over a grid.Grid.
package flood

import (
	"errors"
	"strings"

	"github.com/katalvlaran/gridflood/grid"
)

// Sentinel errors for flood execution and path reconstruction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed to Flood.
	ErrGridNil = errors.New("flood: grid is nil")

	// ErrNoPath is returned by PathFrom when the start cell is a wall,
	// unreachable from every goal, or out of bounds.
	ErrNoPath = errors.New("flood: no path to any goal from start cell")
)

// Unreached is the DistanceField sentinel for walls and for open cells
// with no route to any goal.
const Unreached = -1

// Direction is a per-cell tag naming the next cardinal step along a
// shortest path toward the nearest goal, or a sentinel for wall,
// goal, and unreachable cells.
type Direction uint8

const (
	// None marks an open cell with no route to any goal. Zero value.
	None Direction = iota
	// Wall marks an impassable cell, excluded from traversal.
	Wall
	// Goal marks a flood source; following directions stops here.
	Goal
	// Up steps toward decreasing row.
	Up
	// Down steps toward increasing row.
	Down
	// Left steps toward decreasing column.
	Left
	// Right steps toward increasing column.
	Right
)

// dirRunes maps each Direction to its display character, indexed by tag.
var dirRunes = [...]rune{None: ' ', Wall: '#', Goal: 'X', Up: '^', Down: 'v', Left: '<', Right: '>'}

// dirNames maps each Direction to its identifier, indexed by tag.
var dirNames = [...]string{None: "None", Wall: "Wall", Goal: "Goal", Up: "Up", Down: "Down", Left: "Left", Right: "Right"}

// Rune returns the display character for d: ' ' (None), '#' (Wall),
// 'X' (Goal), '^', 'v', '<', '>'.
func (d Direction) Rune() rune {
	if int(d) >= len(dirRunes) {
		return '?'
	}

	return dirRunes[d]
}

// String returns the tag name, e.g. "Up".
func (d Direction) String() string {
	if int(d) >= len(dirNames) {
		return "Invalid"
	}

	return dirNames[d]
}

// Offset returns the row/column delta of one step in direction d.
// Sentinel tags (None, Wall, Goal) have a zero offset.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// DistanceField holds, per cell, the exact shortest hop count to the
// nearest goal, or Unreached for walls and cells no goal can reach.
// Goal cells hold 0. Immutable once produced.
type DistanceField [][]int

// DirectionField holds one Direction tag per cell. Immutable once produced.
type DirectionField [][]Direction

// Render formats the field as one line of display characters per row,
// suitable for direct terminal or UI presentation.
func (f DirectionField) Render() string {
	var b strings.Builder
	for r, row := range f {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, d := range row {
			b.WriteRune(d.Rune())
		}
	}

	return b.String()
}

// Result holds the outcome of one flood:
//   - Distances: shortest hop count per cell, Unreached sentinel.
//   - Directions: next-step tag per cell.
//   - Reachable: true iff no cell holds None.
type Result struct {
	Distances  DistanceField
	Directions DirectionField
	Reachable  bool
}

// Option configures Flood behavior via functional arguments.
type Option func(*Options)

// Options holds observation callbacks for Flood execution. Hooks never
// alter the computation; Flood always runs to completion.
type Options struct {
	// OnEnqueue is called when a cell is assigned and enqueued,
	// with its coordinate and distance. Goal seeds fire at distance 0.
	OnEnqueue func(at grid.Coord, dist int)

	// OnDequeue is called immediately before a cell's neighbors are
	// expanded.
	OnDequeue func(at grid.Coord, dist int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Coord, int) {},
		OnDequeue: func(grid.Coord, int) {},
	}
}

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(at grid.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is dequeued.
func WithOnDequeue(fn func(at grid.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
