// Package astar implements an incremental A* shortest-path search on an
// orthogonal occupancy grid.
//
// Instead of running to completion, an Engine exposes the search one frontier
// expansion at a time: every Advance call pops the best frontier entry, marks
// it visited and returns an Event describing the new state. Solve drives
// Advance until the terminal Found or Exhausted event.
//
// Complexity:
//
//   - Time:  O(N log N) over a full run, N = rows×cols.
//   - Each cell is expanded at most once; stale heap entries are discarded.
//   - Each cell is pushed at most once per strict cost improvement.
//   - Space: O(N) for the cost, back-pointer and visit-stamp tables plus the heap.
package astar

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazestar/grid"
)

// noCost marks a cell with no recorded g-value.
const noCost = -1

// Engine is one search session: grid, endpoints, frontier, cost record,
// back-pointers and visited set. It is owned by a single caller and is not
// safe for concurrent use.
type Engine struct {
	grid    *grid.Grid
	start   grid.Cell
	goal    grid.Cell
	options Options
	log     *slog.Logger

	cost  []int       // index → best known g-value, noCost if none
	back  []int       // index → predecessor index, valid where cost improved
	stamp []int32     // index → 1-based expansion number, 0 if unvisited
	order []grid.Cell // visited cells in expansion order
	pq    frontier    // open set with lazy deletion
	nbrs  []grid.Cell // scratch buffer for neighbour enumeration

	result *Event // terminal event once produced
}

// Heuristic returns the Manhattan distance between a and b.
// It never overestimates the number of orthogonal unit steps, and it is
// consistent, so a cell's cost is final when it is first popped.
func Heuristic(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// New creates a search session on g from start to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil.
//  2. start must be in bounds and Free.
//  3. goal must be in bounds and Free.
//
// Every failure wraps ErrInvalidInput. On success cost[start] = 0 and the
// frontier holds the single entry (Heuristic(start, goal), start).
func New(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}

	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidInput)
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	n := g.Size()
	e := &Engine{
		grid:    g,
		start:   start,
		goal:    goal,
		options: cfg,
		log:     cfg.Logger.With("session", cfg.SessionID),
		cost:    make([]int, n),
		back:    make([]int, n),
		stamp:   make([]int32, n),
		order:   make([]grid.Cell, 0, g.FreeCount()),
		pq:      make(frontier, 0, 4),
		nbrs:    make([]grid.Cell, 0, 4),
	}
	for i := range e.cost {
		e.cost[i] = noCost
		e.back[i] = -1
	}

	e.cost[g.Index(start)] = 0
	heap.Init(&e.pq)
	e.push(start, Heuristic(start, goal))

	e.log.Debug("search session started",
		"start", start.String(), "goal", goal.String(),
		"rows", g.Rows(), "cols", g.Cols())

	return e, nil
}

// checkEndpoint validates that c is an in-bounds Free cell of g.
func checkEndpoint(g *grid.Grid, name string, c grid.Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidInput, name, c, g.Rows(), g.Cols())
	}
	if !g.IsFree(c) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidInput, name, c)
	}

	return nil
}

// Advance performs one step of the search and returns the resulting Event.
//
// Behavior:
//  1. Pop the minimum (priority, cell) entry, discarding entries for cells
//     that were already visited.
//  2. Frontier empty → Exhausted; the session becomes terminal.
//  3. Mark the cell visited.
//  4. Cell is the goal → rebuild the path through back-pointers and return
//     Found; the session becomes terminal and nothing else is expanded.
//  5. Otherwise relax the up, down, left and right neighbours and return Progress.
//
// Once a terminal event was returned every further call yields a zero Event
// and ErrAlreadyTerminal; the terminal event remains available from Result.
func (e *Engine) Advance() (Event, error) {
	if e.result != nil {
		return Event{}, ErrAlreadyTerminal
	}

	// 1) Pop until a cell that has not been expanded yet shows up.
	var item frontierItem
	for {
		if e.pq.Len() == 0 {
			// 2) Nothing left to explore.
			ev := Event{Kind: Exhausted, Visited: e.snapshot(), Step: len(e.order)}
			return e.finish(ev), nil
		}
		item = heap.Pop(&e.pq).(frontierItem)
		if e.stamp[e.grid.Index(item.cell)] == 0 {
			break
		}
	}
	current := item.cell
	ci := e.grid.Index(current)
	e.options.OnPop(current, item.priority)

	// 3) Mark visited. Stamps are written once and never cleared.
	e.order = append(e.order, current)
	e.stamp[ci] = int32(len(e.order))

	ev := Event{
		Kind:    Progress,
		Current: current,
		Visited: e.snapshot(),
		Step:    len(e.order),
		Cost:    e.cost[ci],
	}

	// 4) Goal reached: no expansion after this point.
	if current == e.goal {
		ev.Kind = Found
		ev.Path = e.backtrace()
		return e.finish(ev), nil
	}

	// 5) Relax orthogonal neighbours.
	e.expand(current, ci)

	return ev, nil
}

// Solve drives Advance until a Found or Exhausted event and returns it.
// The result is identical to calling Advance manually until termination.
func (e *Engine) Solve() (Event, error) {
	for {
		ev, err := e.Advance()
		if err != nil {
			return Event{}, err
		}
		if ev.Kind.Terminal() {
			return ev, nil
		}
	}
}

// expand relaxes every in-bounds Free neighbour of current.
// A neighbour's cost, back-pointer and frontier entry are only written when
// the tentative cost is strictly better than the recorded one.
func (e *Engine) expand(current grid.Cell, ci int) {
	tentative := e.cost[ci] + 1
	e.nbrs = e.grid.AppendNeighbors(e.nbrs[:0], current)
	for _, nb := range e.nbrs {
		ni := e.grid.Index(nb)
		if prev := e.cost[ni]; prev != noCost && tentative >= prev {
			continue
		}
		e.cost[ni] = tentative
		e.back[ni] = ci
		e.push(nb, tentative+Heuristic(nb, e.goal))
	}
}

// push inserts c with the given priority and notifies the OnPush hook.
func (e *Engine) push(c grid.Cell, priority int) {
	heap.Push(&e.pq, frontierItem{priority: priority, cell: c})
	e.options.OnPush(c, priority)
}

// backtrace follows back-pointers from the goal to the start and returns the
// path in start→goal order. A missing back-pointer on this walk means the
// cost/back-pointer bookkeeping is corrupt, which is a programming error.
func (e *Engine) backtrace() []grid.Cell {
	startIdx := e.grid.Index(e.start)
	path := make([]grid.Cell, 0, e.cost[e.grid.Index(e.goal)]+1)
	for at := e.grid.Index(e.goal); ; {
		path = append(path, e.grid.CellAt(at))
		if at == startIdx {
			break
		}
		prev := e.back[at]
		if prev < 0 {
			panic(fmt.Sprintf("astar: no back-pointer for %v while rebuilding path", e.grid.CellAt(at)))
		}
		at = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// snapshot returns an immutable view of the current visited set.
func (e *Engine) snapshot() Visited {
	n := len(e.order)
	return Visited{
		order: e.order[:n:n],
		stamp: e.stamp,
		rows:  e.grid.Rows(),
		cols:  e.grid.Cols(),
	}
}

// finish records ev as the terminal event and logs the outcome.
func (e *Engine) finish(ev Event) Event {
	stored := ev
	stored.Path = clonePath(ev.Path)
	e.result = &stored
	e.log.Debug("search session finished",
		"outcome", ev.Kind.String(), "expanded", ev.Step, "path_len", len(ev.Path))

	return ev
}

// ID returns the session identifier used in log records.
func (e *Engine) ID() string { return e.options.SessionID }

// Grid returns the grid being searched.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Start returns the start cell.
func (e *Engine) Start() grid.Cell { return e.start }

// Goal returns the goal cell.
func (e *Engine) Goal() grid.Cell { return e.goal }

// Steps returns the number of cells expanded so far.
func (e *Engine) Steps() int { return len(e.order) }

// Done reports whether the terminal event has been produced.
func (e *Engine) Done() bool { return e.result != nil }

// FrontierLen returns the number of frontier entries, stale ones included.
func (e *Engine) FrontierLen() int { return e.pq.Len() }

// Result returns the terminal event and true once the search has finished.
// The returned Path is a fresh copy.
func (e *Engine) Result() (Event, bool) {
	if e.result == nil {
		return Event{}, false
	}
	ev := *e.result
	ev.Path = clonePath(ev.Path)

	return ev, true
}

// Cost returns the best g-value recorded for c so far.
// The value is final once c has been visited.
func (e *Engine) Cost(c grid.Cell) (int, bool) {
	if !e.grid.InBounds(c) {
		return 0, false
	}
	g := e.cost[e.grid.Index(c)]
	if g == noCost {
		return 0, false
	}

	return g, true
}

func clonePath(p []grid.Cell) []grid.Cell {
	if p == nil {
		return nil
	}
	out := make([]grid.Cell, len(p))
	copy(out, p)

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
