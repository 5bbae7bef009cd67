package astar

import "github.com/katalvlaran/mazestar/grid"

// frontierItem is a (priority, cell) pair stored in the open set.
type frontierItem struct {
	priority int       // f = g + h at push time
	cell     grid.Cell // cell to expand
}

// frontier is a min-heap of frontierItem ordered by priority, then row, then col.
// It permits duplicates: when a cheaper path to a cell is found we push a new
// entry and leave the old one in place. Stale entries surface later with a
// worse priority and are discarded because the cell is already visited.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by priority; equal priorities fall back to (row, col) so the
// pop sequence does not depend on insertion history.
func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}

	return a.cell.Col < b.cell.Col
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop after moving the minimum to the end.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
