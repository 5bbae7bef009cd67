// Command mazestar loads a maze scenario and solves it with the incremental
// A* engine, logging progress as it goes and printing the route it finds.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/mazestar/astar"
	"github.com/katalvlaran/mazestar/internal/ctxlog"
	"github.com/katalvlaran/mazestar/scenario"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// run encapsulates the command logic for easier testing and error handling.
// Results go to out, logs to logW.
func run(ctx context.Context, args []string, out, logW io.Writer) error {
	cfg, shouldExit, err := parseArgs(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	sc, err := loadScenario(ctx, cfg)
	if err != nil {
		return err
	}

	engine, err := sc.NewEngine(astar.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("maze %q: %w", sc.Name, err)
	}
	logger.Info("Solving maze.", "maze", sc.Name, "session", engine.ID(),
		"rows", sc.Grid.Rows(), "cols", sc.Grid.Cols(),
		"start", sc.Start.String(), "goal", sc.Goal.String())

	fmt.Fprintf(out, "maze:     %s (%dx%d) start=%v goal=%v\n",
		sc.Name, sc.Grid.Rows(), sc.Grid.Cols(), sc.Start, sc.Goal)

	ev, done, err := drive(ctx, engine, cfg)
	if err != nil {
		return err
	}
	if !done {
		fmt.Fprintf(out, "outcome:  stopped\nexpanded: %d\n", engine.Steps())
		return &ExitError{Code: exitOverBudget, Message: fmt.Sprintf("step budget of %d exhausted before the search finished", cfg.MaxSteps)}
	}

	fmt.Fprintf(out, "outcome:  %s\nexpanded: %d\n", ev.Kind, ev.Step)
	if ev.Kind == astar.Exhausted {
		return &ExitError{Code: exitExhausted, Message: "goal is unreachable from start"}
	}
	fmt.Fprintf(out, "length:   %d\npath:     %s\n", len(ev.Path)-1, formatPath(ev))

	return nil
}

// loadScenario picks the built-in maze or the requested block of a file.
func loadScenario(ctx context.Context, cfg *config) (*scenario.Scenario, error) {
	if cfg.ScenarioPath == "" {
		if cfg.MazeName != "" && cfg.MazeName != "classic" {
			return nil, &ExitError{Code: exitUsage, Message: fmt.Sprintf("unknown built-in maze %q", cfg.MazeName)}
		}
		return scenario.Classic(), nil
	}

	list, err := scenario.LoadFile(ctx, cfg.ScenarioPath)
	if err != nil {
		return nil, err
	}

	return scenario.Find(list, cfg.MazeName)
}

// drive advances the engine until a terminal event or until the optional
// step budget is spent. done is false when the budget stopped the run.
func drive(ctx context.Context, engine *astar.Engine, cfg *config) (astar.Event, bool, error) {
	logger := ctxlog.FromContext(ctx)
	level := slog.LevelDebug
	if cfg.Trace {
		level = slog.LevelInfo
	}

	for {
		if cfg.MaxSteps > 0 && engine.Steps() >= cfg.MaxSteps {
			logger.Warn("Step budget reached.", "max_steps", cfg.MaxSteps)
			return astar.Event{}, false, nil
		}
		ev, err := engine.Advance()
		if err != nil {
			return astar.Event{}, false, err
		}
		logger.Log(ctx, level, "Expanded cell.",
			"step", ev.Step, "kind", ev.Kind.String(), "cell", ev.Current.String(),
			"cost", ev.Cost, "frontier", engine.FrontierLen())
		if ev.Kind.Terminal() {
			return ev, true, nil
		}
	}
}

func formatPath(ev astar.Event) string {
	parts := make([]string, len(ev.Path))
	for i, c := range ev.Path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}
