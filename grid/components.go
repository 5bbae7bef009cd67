package grid

// Reachable returns every Free cell connected to start by orthogonal moves,
// in BFS discovery order (start first). It returns nil when start is not a
// Free in-bounds cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Reachable(start Cell) []Cell {
	if !g.IsFree(start) {
		return nil
	}
	seen := make([]bool, len(g.cells))

	return g.flood(start, seen)
}

// Components finds all contiguous regions of Free cells.
// Components are returned in row-major order of their first cell;
// each component lists its cells in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]Cell
	for i, m := range g.cells {
		if m != Free || seen[i] {
			continue
		}
		comps = append(comps, g.flood(g.CellAt(i), seen))
	}

	return comps
}

// Distances runs a breadth-first search from start and returns, indexed by
// Index, the number of orthogonal steps to every cell; -1 marks cells that
// are blocked or unreachable. It returns nil when start is not Free.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Distances(start Cell) []int {
	if !g.IsFree(start) {
		return nil
	}
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	dist[g.Index(start)] = 0

	queue := []Cell{start}
	var nbrs []Cell
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := dist[g.Index(u)]
		nbrs = g.AppendNeighbors(nbrs[:0], u)
		for _, v := range nbrs {
			vi := g.Index(v)
			if dist[vi] < 0 {
				dist[vi] = du + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// flood collects the component containing start, marking cells in seen.
func (g *Grid) flood(start Cell, seen []bool) []Cell {
	seen[g.Index(start)] = true
	queue := []Cell{start}
	var nbrs []Cell
	for qi := 0; qi < len(queue); qi++ {
		nbrs = g.AppendNeighbors(nbrs[:0], queue[qi])
		for _, v := range nbrs {
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}
