// Package grid defines core types and sentinel errors
// for the occupancy grids searched by github.com/katalvlaran/mazestar.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadMarker indicates an input value that is neither free nor blocked.
	ErrBadMarker = errors.New("grid: unknown cell marker")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Marker is the occupancy state of a single cell.
type Marker uint8

const (
	// Free cells can be entered.
	Free Marker = iota
	// Blocked cells are walls.
	Blocked
)

// String returns "free" or "blocked".
func (m Marker) String() string {
	switch m {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("Marker(%d)", uint8(m))
	}
}

// Cell is a 0-indexed (row, col) coordinate. It is a comparable value type
// and can be used directly as a map key.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// offsets lists orthogonal moves in the fixed order up, down, left, right.
// Every traversal in this module iterates neighbours in this order so that
// tie-breaks stay deterministic.
var offsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rows×cols occupancy grid stored row-major.
// It is safe for concurrent readers once built.
type Grid struct {
	rows, cols int
	cells      []Marker
	free       int
}
