// Package grid models the fixed-size occupancy grid that the astar engine
// searches.
//
// What:
//
//   - Grid wraps a rectangular rows×cols array of Markers (Free or Blocked).
//   - Cell is a 0-indexed (Row, Col) value type, comparable and hashable.
//   - Neighbourhood is orthogonal only, enumerated up, down, left, right.
//   - Region analysis: Reachable, Components and Distances (plain BFS).
//
// Why:
//
//   - Maze solving: the engine validates endpoints and expands neighbours here.
//   - Testing: Distances is a brute-force oracle for shortest-path lengths,
//     Reachable describes exactly what an exhausted search must have visited.
//
// Complexity:
//
//   - Construction: O(R×C), Memory: O(R×C).
//   - InBounds, IsFree, Index, CellAt, AppendNeighbors: O(1).
//   - Reachable, Components, Distances: O(R×C), Memory: O(R×C).
//
// Encodings:
//
//   - FromInts: 0 = free, 1 = blocked.
//   - Parse / ParseString: '.' or '0' = free, '#' or '1' = blocked.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadMarker: an input value is neither free nor blocked.
//   - ErrOutOfBounds: At was asked for a cell outside the grid.
package grid
