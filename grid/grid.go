// Package grid provides the occupancy grid searched by the astar engine.
// It supports:
//
//   - Construction from markers, 0/1 integer matrices or text rows
//   - Bounds and occupancy queries with row-major indexing
//   - Orthogonal neighbour enumeration in a fixed order (up, down, left, right)
//   - Region analysis: reachable cells, connected components, BFS distances
//
// A Grid never changes after construction; constructors deep-copy their input.
package grid

import (
	"fmt"
	"strings"
)

// FromMarkers constructs a Grid from a non-empty, rectangular 2D slice of markers.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadMarker for unknown markers.
// Complexity: O(R×C) time and memory.
func FromMarkers(values [][]Marker) (*Grid, error) {
	rows, cols, err := shape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Marker, 0, rows*cols)}
	for r, row := range values {
		for c, m := range row {
			if m != Free && m != Blocked {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrBadMarker, m, r, c)
			}
			g.push(m)
		}
	}

	return g, nil
}

// FromInts constructs a Grid from a 0/1 matrix: 0 is free, 1 is blocked.
// Any other value yields ErrBadMarker.
// Complexity: O(R×C) time and memory.
func FromInts(values [][]int) (*Grid, error) {
	rows, cols, err := shape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Marker, 0, rows*cols)}
	for r, row := range values {
		for c, v := range row {
			switch v {
			case 0:
				g.push(Free)
			case 1:
				g.push(Blocked)
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadMarker, v, r, c)
			}
		}
	}

	return g, nil
}

// Parse constructs a Grid from text rows. '.' and '0' are free,
// '#' and '1' are blocked. Every row must have the same number of runes.
// Complexity: O(R×C).
func Parse(lines []string) (*Grid, error) {
	runes := make([][]rune, len(lines))
	for i, line := range lines {
		runes[i] = []rune(line)
	}
	rows, cols, err := shape(len(runes), func(r int) int { return len(runes[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Marker, 0, rows*cols)}
	for r, row := range runes {
		for c, ch := range row {
			switch ch {
			case '.', '0':
				g.push(Free)
			case '#', '1':
				g.push(Blocked)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadMarker, ch, r, c)
			}
		}
	}

	return g, nil
}

// ParseString splits s into lines, trims surrounding whitespace and drops
// blank lines before calling Parse.
func ParseString(s string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return Parse(lines)
}

// shape validates that n rows all share the length of the first one.
func shape(n int, rowLen func(int) int) (rows, cols int, err error) {
	if n == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	cols = rowLen(0)
	for r := 1; r < n; r++ {
		if rowLen(r) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, rowLen(r), cols)
		}
	}

	return n, cols, nil
}

func (g *Grid) push(m Marker) {
	g.cells = append(g.cells, m)
	if m == Free {
		g.free++
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// FreeCount returns the number of Free cells.
func (g *Grid) FreeCount() int { return g.free }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the marker stored at c, or ErrOutOfBounds.
func (g *Grid) At(c Cell) (Marker, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}

	return g.cells[g.Index(c)], nil
}

// IsFree reports whether c is in bounds and Free.
// Complexity: O(1).
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] == Free
}

// Index maps c to its row-major index: row*cols + col.
// The result is only meaningful for in-bounds cells.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// AppendNeighbors appends the in-bounds Free orthogonal neighbours of c to dst
// in the order up, down, left, right and returns the extended slice.
// Callers reuse dst across calls to avoid allocations.
// Complexity: O(1).
func (g *Grid) AppendNeighbors(dst []Cell, c Cell) []Cell {
	for _, d := range offsets {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.IsFree(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// String renders the grid in the format accepted by ParseString.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for i, m := range g.cells {
		if m == Blocked {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if (i+1)%g.cols == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
