// Package astar defines core types, events and configuration options
// for the incremental A* search over a grid.Grid.
package astar

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/mazestar/grid"
)

// Sentinel errors returned by the search engine.
var (
	// ErrInvalidInput indicates a nil grid, or a start/goal cell that is
	// out of bounds or Blocked. Construction fails and no engine is returned.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrAlreadyTerminal indicates Advance or Solve was called after the
	// engine already produced its Found or Exhausted event.
	ErrAlreadyTerminal = errors.New("astar: search already terminated")
)

// EventKind discriminates the three observable outcomes of Advance.
type EventKind int

const (
	// Progress reports one expanded cell; the search continues.
	Progress EventKind = iota + 1
	// Found reports that the goal was popped; Path is populated.
	Found
	// Exhausted reports an empty frontier: the goal is unreachable.
	Exhausted
)

// String returns the lower-case name of the kind.
func (k EventKind) String() string {
	switch k {
	case Progress:
		return "progress"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further events follow an event of this kind.
func (k EventKind) Terminal() bool {
	return k == Found || k == Exhausted
}

// Event is one observable state of the search, returned by Advance.
//
// Kind     – Progress, Found or Exhausted.
// Current  – the cell popped in this step (zero Cell for Exhausted).
// Visited  – immutable snapshot of the visited set after this step.
// Path     – start→goal inclusive for Found, nil otherwise. Owned by the caller.
// Step     – number of cells expanded so far, including Current.
// Cost     – g-value of Current (path length from start), 0 for Exhausted.
type Event struct {
	Kind    EventKind
	Current grid.Cell
	Visited Visited
	Path    []grid.Cell
	Step    int
	Cost    int
}

// Options configures an Engine.
//
// Logger    – receives Debug records for session start and termination.
// SessionID – identifier attached to every log record; random UUID by default.
// OnPush    – called for every frontier insertion with the cell and its priority.
// OnPop     – called for every frontier removal that leads to an expansion.
type Options struct {
	Logger    *slog.Logger
	SessionID string
	OnPush    func(c grid.Cell, priority int)
	OnPop     func(c grid.Cell, priority int)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(o *Options) {
		if id != "" {
			o.SessionID = id
		}
	}
}

// WithOnPush registers a callback invoked on every frontier push.
func WithOnPush(fn func(c grid.Cell, priority int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback invoked when a cell is popped for expansion.
// Stale frontier entries that are discarded do not trigger it.
func WithOnPop(fn func(c grid.Cell, priority int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// DefaultOptions returns Options with a discarding logger, an empty session id
// (filled with a UUID by New) and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnPush: func(grid.Cell, int) {},
		OnPop:  func(grid.Cell, int) {},
	}
}
