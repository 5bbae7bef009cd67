package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Exit codes returned by the command.
const (
	exitFailure    = 1
	exitUsage      = 2
	exitExhausted  = 3
	exitOverBudget = 4
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// config holds the parsed command-line settings.
type config struct {
	ScenarioPath string
	MazeName     string
	MaxSteps     int
	LogFormat    string
	LogLevel     slog.Level
	Trace        bool
}

// parseArgs processes command-line arguments. It returns the populated config,
// a boolean indicating the program should exit cleanly (help), or an ExitError.
func parseArgs(args []string, output io.Writer) (*config, bool, error) {
	flagSet := flag.NewFlagSet("mazestar", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazestar - step-by-step A* maze solver.

Usage:
  mazestar [options] [SCENARIO_FILE]

Arguments:
  SCENARIO_FILE
    HCL file with one or more maze blocks. Defaults to the built-in classic maze.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to an HCL scenario file.")
	mazeFlag := flagSet.String("maze", "", "Name of the maze block to solve (default: first block).")
	maxStepsFlag := flagSet.Int("max-steps", 0, "Stop after this many expansions. 0 means no limit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	traceFlag := flagSet.Bool("trace", false, "Log every expansion at info level.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}

	path := *scenarioFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if *maxStepsFlag < 0 {
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid max-steps: must not be negative"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &config{
		ScenarioPath: path,
		MazeName:     *mazeFlag,
		MaxSteps:     *maxStepsFlag,
		LogFormat:    logFormat,
		LogLevel:     level,
		Trace:        *traceFlag,
	}, false, nil
}

// newLogger builds the handler selected by the config.
func newLogger(cfg *config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
