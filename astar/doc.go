// Package astar finds the shortest orthogonal route between two cells of a
// grid.Grid with A* and lets the caller watch the search evolve.
//
// The search is exposed as a session object rather than a single call:
//
//	e, err := astar.New(g, start, goal)
//	for {
//	    ev, err := e.Advance()   // one frontier pop per call
//	    ...
//	    if ev.Kind.Terminal() { break }
//	}
//
// Every Advance returns one Event:
//
//	– Progress  – a cell was expanded; Visited holds the snapshot.
//	– Found     – the goal was popped; Path runs start→goal inclusive.
//	– Exhausted – the frontier ran dry; the goal is unreachable.
//
// Algorithm:
//
//	– Heuristic: Manhattan distance, admissible and consistent for unit moves.
//	– Frontier: binary heap keyed by f = g + h, ties broken by (row, col).
//	– Lazy decrease-key: improved cells are pushed again; entries for
//	  cells that were already expanded are dropped when popped.
//	– Neighbours are relaxed in the fixed order up, down, left, right.
//	– A neighbour is updated only on a strictly smaller g-value.
//
// Guarantees:
//
//	– Found.Path has length cost(goal)+1 and is a shortest route.
//	– Each cell is expanded at most once, so a run produces at most
//	  rows×cols Progress events before its terminal event.
//	– Identical inputs give identical event sequences.
//	– Visited snapshots only ever grow from one event to the next and are
//	  never mutated after being returned.
//
// Terminal policy:
//
//	After Found or Exhausted, Advance and Solve return ErrAlreadyTerminal.
//	The terminal event stays available through Engine.Result.
//
// Errors (sentinel):
//
//	– ErrInvalidInput    if the grid is nil or start/goal is out of bounds or blocked.
//	– ErrAlreadyTerminal if the session already produced its terminal event.
//
// An Engine is single-threaded state owned by one caller. Cancel a search by
// no longer calling Advance; step or time budgets belong to the caller's loop.
package astar
