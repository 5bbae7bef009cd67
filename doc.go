// Package mazestar is a step-by-step A* maze solver for occupancy grids.
//
// What is mazestar?
//
//	A small library plus command that finds the shortest orthogonal route
//	between two cells and lets the caller watch every expansion:
//		• grid/     : immutable Free/Blocked grids, parsing, BFS region analysis
//		• astar/    : the incremental engine: New, Advance, Solve, Events
//		• scenario/ : HCL maze files (grid + start + goal), built-in classic maze
//		• cmd/mazestar: CLI driver with step budgets and structured logs
//
// Quick example:
//
//	g, _ := grid.ParseString(`
//	    ..#
//	    ...
//	`)
//	e, _ := astar.New(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2})
//	for {
//	    ev, _ := e.Advance()
//	    draw(ev.Current, ev.Visited) // one frame per expansion
//	    if ev.Kind.Terminal() {
//	        break
//	    }
//	}
//
// Rendering, input handling and frame pacing are left to the caller; the
// engine only produces one Event per Advance call.
package mazestar
