package astar

import "github.com/katalvlaran/mazestar/grid"

// Visited is a read-only snapshot of the visited set at the time an Event
// was produced. Snapshots are O(1) to take and never change afterwards,
// even while the engine keeps running.
//
// The engine appends cells to a shared order slice and stamps each cell with
// its 1-based expansion number. A snapshot of length n is the prefix order[:n]
// with capacity clipped to n, so later appends never write into it, and
// Contains treats stamps above n as not yet visited.
type Visited struct {
	order []grid.Cell
	stamp []int32
	cols  int
	rows  int
}

// Len returns the number of visited cells in the snapshot.
func (v Visited) Len() int { return len(v.order) }

// Contains reports whether c had been visited when the snapshot was taken.
// Complexity: O(1).
func (v Visited) Contains(c grid.Cell) bool {
	if c.Row < 0 || c.Row >= v.rows || c.Col < 0 || c.Col >= v.cols {
		return false
	}
	s := v.stamp[c.Row*v.cols+c.Col]

	return s > 0 && int(s) <= len(v.order)
}

// Cells returns the visited cells in expansion order as a fresh slice.
// Complexity: O(n).
func (v Visited) Cells() []grid.Cell {
	out := make([]grid.Cell, len(v.order))
	copy(out, v.order)

	return out
}

// Set returns the visited cells as a fresh map.
func (v Visited) Set() map[grid.Cell]struct{} {
	out := make(map[grid.Cell]struct{}, len(v.order))
	for _, c := range v.order {
		out[c] = struct{}{}
	}

	return out
}
