package astar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazestar/astar"
	"github.com/katalvlaran/mazestar/grid"
)

// EngineSuite exercises the incremental engine on hand-built mazes.
type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// mustGrid parses rows or fails the test.
func (s *EngineSuite) mustGrid(rows ...string) *grid.Grid {
	g, err := grid.Parse(rows)
	require.NoError(s.T(), err)

	return g
}

// drain collects every event up to and including the terminal one.
func drain(t *testing.T, e *astar.Engine) []astar.Event {
	t.Helper()
	var events []astar.Event
	for {
		ev, err := e.Advance()
		require.NoError(t, err)
		events = append(events, ev)
		if ev.Kind.Terminal() {
			return events
		}
	}
}

// TestOpenGrid3x3 solves the all-free 3×3 grid from (0,0) to (2,2).
// With (row, col) tie-breaking the route hugs the top row.
func (s *EngineSuite) TestOpenGrid3x3() {
	g := s.mustGrid("...", "...", "...")
	e, err := astar.New(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	require.NoError(s.T(), err)

	ev, err := e.Solve()
	require.NoError(s.T(), err)
	require.Equal(s.T(), astar.Found, ev.Kind)
	require.Len(s.T(), ev.Path, 5)
	require.Equal(s.T(), 4, ev.Cost)
	require.Equal(s.T(), grid.Cell{Row: 2, Col: 2}, ev.Current)

	want := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}
	if diff := cmp.Diff(want, ev.Path); diff != "" {
		s.T().Errorf("path mismatch (-want +got):\n%s", diff)
	}
	require.Equal(s.T(), 9, ev.Step)
	require.Equal(s.T(), 9, ev.Visited.Len())
}

// TestStartEqualsGoal returns Found on the very first Advance.
func (s *EngineSuite) TestStartEqualsGoal() {
	g := s.mustGrid("..", "..")
	c := grid.Cell{Row: 1, Col: 0}
	e, err := astar.New(g, c, c)
	require.NoError(s.T(), err)

	ev, err := e.Advance()
	require.NoError(s.T(), err)
	require.Equal(s.T(), astar.Found, ev.Kind)
	require.Equal(s.T(), []grid.Cell{c}, ev.Path)
	require.Equal(s.T(), 1, ev.Step)
	require.Zero(s.T(), ev.Cost)
	require.True(s.T(), ev.Visited.Contains(c))
}

// TestInvalidInput covers every construction failure.
func (s *EngineSuite) TestInvalidInput() {
	g := s.mustGrid(
		"..#",
		"...",
	)
	cases := []struct {
		name        string
		grid        *grid.Grid
		start, goal grid.Cell
	}{
		{"NilGrid", nil, grid.Cell{}, grid.Cell{}},
		{"BlockedGoal", g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2}},
		{"BlockedStart", g, grid.Cell{Row: 0, Col: 2}, grid.Cell{Row: 1, Col: 2}},
		{"StartOutOfBounds", g, grid.Cell{Row: -1, Col: 0}, grid.Cell{Row: 1, Col: 2}},
		{"GoalOutOfBounds", g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 0}},
		{"GoalColOutOfBounds", g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 3}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			e, err := astar.New(tc.grid, tc.start, tc.goal)
			require.ErrorIs(s.T(), err, astar.ErrInvalidInput)
			require.Nil(s.T(), e)
		})
	}
}

// TestWalledGoal isolates the goal behind a full wall; the run must end in
// Exhausted having visited exactly the start region.
func (s *EngineSuite) TestWalledGoal() {
	g := s.mustGrid(
		"...#..",
		".#.#..",
		"...#..",
	)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 5}
	e, err := astar.New(g, start, goal)
	require.NoError(s.T(), err)

	events := drain(s.T(), e)
	last := events[len(events)-1]
	require.Equal(s.T(), astar.Exhausted, last.Kind)
	require.Nil(s.T(), last.Path)

	region := g.Reachable(start)
	require.Equal(s.T(), len(region), last.Visited.Len())
	for _, c := range region {
		require.True(s.T(), last.Visited.Contains(c), "region cell %v not visited", c)
	}
	require.Equal(s.T(), len(region), len(events)-1, "one Progress per region cell")
	require.Zero(s.T(), e.FrontierLen())
}

// TestAlreadyTerminal pins the re-invocation policy for both terminal kinds.
func (s *EngineSuite) TestAlreadyTerminal() {
	found, err := astar.New(s.mustGrid(".."), grid.Cell{}, grid.Cell{Row: 0, Col: 1})
	require.NoError(s.T(), err)
	first, err := found.Solve()
	require.NoError(s.T(), err)
	require.Equal(s.T(), astar.Found, first.Kind)

	ev, err := found.Advance()
	require.ErrorIs(s.T(), err, astar.ErrAlreadyTerminal)
	require.Equal(s.T(), astar.EventKind(0), ev.Kind)
	_, err = found.Solve()
	require.ErrorIs(s.T(), err, astar.ErrAlreadyTerminal)

	res, ok := found.Result()
	require.True(s.T(), ok)
	require.Equal(s.T(), first.Path, res.Path)
	require.True(s.T(), found.Done())

	exhausted, err := astar.New(s.mustGrid(".#."), grid.Cell{}, grid.Cell{Row: 0, Col: 2})
	require.NoError(s.T(), err)
	last, err := exhausted.Solve()
	require.NoError(s.T(), err)
	require.Equal(s.T(), astar.Exhausted, last.Kind)
	_, err = exhausted.Advance()
	require.ErrorIs(s.T(), err, astar.ErrAlreadyTerminal)
}

// TestResultBeforeTermination reports no result while the run is live.
func (s *EngineSuite) TestResultBeforeTermination() {
	e, err := astar.New(s.mustGrid("...."), grid.Cell{}, grid.Cell{Row: 0, Col: 3})
	require.NoError(s.T(), err)
	_, ok := e.Result()
	require.False(s.T(), ok)
	require.False(s.T(), e.Done())

	ev, err := e.Advance()
	require.NoError(s.T(), err)
	require.Equal(s.T(), astar.Progress, ev.Kind)
	require.Nil(s.T(), ev.Path)
	_, ok = e.Result()
	require.False(s.T(), ok)
}

// TestSolveMatchesAdvance checks Solve and a manual Advance loop agree.
func (s *EngineSuite) TestSolveMatchesAdvance() {
	g := s.mustGrid(
		"..#.....",
		"..#.##..",
		"....#...",
		"###.#.#.",
		"......#.",
	)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 7}

	a, err := astar.New(g, start, goal)
	require.NoError(s.T(), err)
	manual := drain(s.T(), a)

	b, err := astar.New(g, start, goal)
	require.NoError(s.T(), err)
	solved, err := b.Solve()
	require.NoError(s.T(), err)

	last := manual[len(manual)-1]
	require.Equal(s.T(), last.Kind, solved.Kind)
	require.Equal(s.T(), last.Path, solved.Path)
	require.Equal(s.T(), last.Step, solved.Step)
	require.Equal(s.T(), last.Visited.Cells(), solved.Visited.Cells())
}

// TestDeterminism compares the full event trace of two identical runs.
func (s *EngineSuite) TestDeterminism() {
	g := s.mustGrid(
		"......",
		".####.",
		"......",
		".#..#.",
		"......",
	)
	trace := func() []grid.Cell {
		e, err := astar.New(g, grid.Cell{Row: 4, Col: 0}, grid.Cell{Row: 0, Col: 5})
		require.NoError(s.T(), err)
		var cur []grid.Cell
		for _, ev := range drain(s.T(), e) {
			cur = append(cur, ev.Current)
		}
		last, _ := e.Result()
		return append(cur, last.Path...)
	}
	if diff := cmp.Diff(trace(), trace()); diff != "" {
		s.T().Errorf("non-deterministic trace (-first +second):\n%s", diff)
	}
}

// TestSnapshotsAreImmutable keeps early snapshots and checks they are not
// affected by later steps or by edits to returned slices.
func (s *EngineSuite) TestSnapshotsAreImmutable() {
	g := s.mustGrid("....", "....", "....")
	e, err := astar.New(g, grid.Cell{}, grid.Cell{Row: 2, Col: 3})
	require.NoError(s.T(), err)

	events := drain(s.T(), e)
	first := events[0]
	require.Equal(s.T(), 1, first.Visited.Len())
	require.True(s.T(), first.Visited.Contains(grid.Cell{}))
	for _, ev := range events[1:] {
		require.False(s.T(), first.Visited.Contains(ev.Current), "later cell %v leaked into first snapshot", ev.Current)
	}

	cells := first.Visited.Cells()
	cells[0] = grid.Cell{Row: 2, Col: 2}
	require.Equal(s.T(), grid.Cell{}, first.Visited.Cells()[0])

	set := events[1].Visited.Set()
	require.Len(s.T(), set, 2)

	last := events[len(events)-1]
	last.Path[0] = grid.Cell{Row: 9, Col: 9}
	res, _ := e.Result()
	require.Equal(s.T(), grid.Cell{}, res.Path[0])
}

// TestVisitedMonotonic checks each snapshot contains the previous one plus
// exactly the newly expanded cell.
func (s *EngineSuite) TestVisitedMonotonic() {
	g := s.mustGrid(
		".....",
		".###.",
		".#...",
		".#.#.",
		"...#.",
	)
	e, err := astar.New(g, grid.Cell{Row: 4, Col: 0}, grid.Cell{Row: 4, Col: 4})
	require.NoError(s.T(), err)

	prev := []grid.Cell{}
	for _, ev := range drain(s.T(), e) {
		cur := ev.Visited.Cells()
		require.Equal(s.T(), ev.Step, len(cur))
		require.Equal(s.T(), prev, cur[:len(prev)])
		require.Equal(s.T(), ev.Current, cur[len(cur)-1])
		prev = cur
	}
}

// TestRectangularGrid runs on a 2×7 corridor with a detour.
func (s *EngineSuite) TestRectangularGrid() {
	g := s.mustGrid(
		"...#...",
		".#...#.",
	)
	e, err := astar.New(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 6})
	require.NoError(s.T(), err)

	ev, err := e.Solve()
	require.NoError(s.T(), err)
	require.Equal(s.T(), astar.Found, ev.Kind)
	want := []grid.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 0, Col: 4}, {Row: 0, Col: 5}, {Row: 0, Col: 6},
	}
	require.Equal(s.T(), want, ev.Path)

	cost, ok := e.Cost(grid.Cell{Row: 0, Col: 6})
	require.True(s.T(), ok)
	require.Equal(s.T(), 8, cost)
	_, ok = e.Cost(grid.Cell{Row: 0, Col: 3})
	require.False(s.T(), ok, "blocked cell has no cost")
	_, ok = e.Cost(grid.Cell{Row: 5, Col: 5})
	require.False(s.T(), ok, "out of bounds")
}

// TestHooks counts push and pop notifications.
func (s *EngineSuite) TestHooks() {
	g := s.mustGrid("...", ".#.", "...")
	var pushes, pops []grid.Cell
	e, err := astar.New(g, grid.Cell{}, grid.Cell{Row: 2, Col: 2},
		astar.WithOnPush(func(c grid.Cell, _ int) { pushes = append(pushes, c) }),
		astar.WithOnPop(func(c grid.Cell, _ int) { pops = append(pops, c) }),
		astar.WithSessionID("fixed-id"),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "fixed-id", e.ID())
	require.Equal(s.T(), []grid.Cell{{Row: 0, Col: 0}}, pushes, "start is pushed by New")

	ev, err := e.Solve()
	require.NoError(s.T(), err)
	require.Len(s.T(), pops, ev.Step)
	require.Equal(s.T(), ev.Visited.Cells(), pops)
	require.GreaterOrEqual(s.T(), len(pushes), len(pops))
}

// TestAccessors covers the read-only engine getters.
func (s *EngineSuite) TestAccessors() {
	g := s.mustGrid("..", "..")
	start, goal := grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 1, Col: 0}
	e, err := astar.New(g, start, goal)
	require.NoError(s.T(), err)

	require.NotEmpty(s.T(), e.ID())
	require.Same(s.T(), g, e.Grid())
	require.Equal(s.T(), start, e.Start())
	require.Equal(s.T(), goal, e.Goal())
	require.Zero(s.T(), e.Steps())
	require.Equal(s.T(), 1, e.FrontierLen())

	cost, ok := e.Cost(start)
	require.True(s.T(), ok)
	require.Zero(s.T(), cost)

	_, err = e.Advance()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, e.Steps())
}

// TestHeuristic checks the Manhattan distance in every quadrant.
func TestHeuristic(t *testing.T) {
	o := grid.Cell{Row: 3, Col: 3}
	require.Equal(t, 0, astar.Heuristic(o, o))
	require.Equal(t, 5, astar.Heuristic(o, grid.Cell{Row: 0, Col: 1}))
	require.Equal(t, 5, astar.Heuristic(grid.Cell{Row: 0, Col: 1}, o))
	require.Equal(t, 7, astar.Heuristic(o, grid.Cell{Row: 7, Col: 6}))
}

// TestEventKindString covers names and the terminal predicate.
func TestEventKindString(t *testing.T) {
	require.Equal(t, "progress", astar.Progress.String())
	require.Equal(t, "found", astar.Found.String())
	require.Equal(t, "exhausted", astar.Exhausted.String())
	require.Equal(t, "unknown", astar.EventKind(0).String())
	require.False(t, astar.Progress.Terminal())
	require.True(t, astar.Found.Terminal())
	require.True(t, astar.Exhausted.Terminal())
}
