// Package scenario loads maze definitions (grid, start and goal) from HCL files.
//
// A file holds one or more labelled maze blocks:
//
//	maze "corridor" {
//	  description = "optional text"
//	  rows  = ["..#", "..."]
//	  start = [0, 0]
//	  goal  = [height - 1, width - 1]
//	}
//
// rows uses the grid.Parse alphabet ('.'/'0' free, '#'/'1' blocked).
// start and goal are [row, col] expressions evaluated with the variables
// height and width bound to the grid dimensions.
package scenario

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mazestar/astar"
	"github.com/katalvlaran/mazestar/grid"
	"github.com/katalvlaran/mazestar/internal/ctxlog"
)

// Sentinel errors for scenario loading.
var (
	// ErrNoMazes indicates a file without any maze block.
	ErrNoMazes = errors.New("scenario: no maze blocks found")
	// ErrMalformed indicates a maze block whose values cannot form a scenario.
	ErrMalformed = errors.New("scenario: malformed maze block")
	// ErrDuplicateName indicates two maze blocks sharing a label.
	ErrDuplicateName = errors.New("scenario: duplicate maze name")
	// ErrNotFound indicates Find was asked for an unknown name.
	ErrNotFound = errors.New("scenario: maze not found")
)

//go:embed classic.hcl
var classicSrc []byte

// Scenario is one decoded maze: an immutable grid plus its endpoints.
type Scenario struct {
	Name        string
	Description string
	Source      string // file name the block came from
	Grid        *grid.Grid
	Start       grid.Cell
	Goal        grid.Cell
}

// NewEngine starts a search session for the scenario.
func (s *Scenario) NewEngine(opts ...astar.Option) (*astar.Engine, error) {
	return astar.New(s.Grid, s.Start, s.Goal, opts...)
}

// hclFile represents the top-level structure of a scenario file for decoding.
type hclFile struct {
	Mazes []*hclMaze `hcl:"maze,block"`
}

// hclMaze is a single maze block. Endpoints stay raw expressions until the
// grid size is known.
type hclMaze struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Rows        []string       `hcl:"rows"`
	Start       hcl.Expression `hcl:"start"`
	Goal        hcl.Expression `hcl:"goal"`
}

// LoadFile parses and decodes every maze block in the HCL file at path.
func LoadFile(ctx context.Context, path string) ([]*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding scenario file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	out, err := decode(file, path)
	if err != nil {
		return nil, err
	}

	logger.Debug("Successfully decoded scenario file.", "path", path, "mazes_found", len(out))
	return out, nil
}

// Parse decodes scenario source held in memory; filename is used in diagnostics.
func Parse(src []byte, filename string) ([]*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(file, filename)
}

// Classic returns the embedded 20×20 demo maze, solved from (0,0) to (19,19).
// Each call returns a fresh Scenario.
func Classic() *Scenario {
	list, err := Parse(classicSrc, "classic.hcl")
	if err != nil {
		panic(fmt.Sprintf("scenario: embedded classic maze is invalid: %v", err))
	}

	return list[0]
}

// Find returns the scenario labelled name. An empty name selects the first one.
func Find(list []*Scenario, name string) (*Scenario, error) {
	if len(list) == 0 {
		return nil, ErrNoMazes
	}
	if name == "" {
		return list[0], nil
	}
	for _, s := range list {
		if s.Name == name {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// decode turns a parsed file into scenarios, validating names and shapes.
func decode(file *hcl.File, filename string) ([]*Scenario, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if len(parsed.Mazes) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMazes, filename)
	}

	seen := make(map[string]bool, len(parsed.Mazes))
	out := make([]*Scenario, 0, len(parsed.Mazes))
	for _, m := range parsed.Mazes {
		if seen[m.Name] {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateName, m.Name, filename)
		}
		seen[m.Name] = true

		s, err := newScenario(m, filename)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// newScenario builds the grid first, then evaluates the endpoint expressions
// with height and width in scope.
func newScenario(m *hclMaze, filename string) (*Scenario, error) {
	g, err := grid.Parse(m.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: maze %q in %s: %w", ErrMalformed, m.Name, filename, err)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"height": cty.NumberIntVal(int64(g.Rows())),
			"width":  cty.NumberIntVal(int64(g.Cols())),
		},
	}
	start, err := decodeCell(m.Start, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: maze %q start in %s: %w", ErrMalformed, m.Name, filename, err)
	}
	goal, err := decodeCell(m.Goal, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: maze %q goal in %s: %w", ErrMalformed, m.Name, filename, err)
	}

	return &Scenario{
		Name:        m.Name,
		Description: m.Description,
		Source:      filename,
		Grid:        g,
		Start:       start,
		Goal:        goal,
	}, nil
}

// decodeCell evaluates a [row, col] expression.
func decodeCell(expr hcl.Expression, evalCtx *hcl.EvalContext) (grid.Cell, error) {
	var rc []int
	if diags := gohcl.DecodeExpression(expr, evalCtx, &rc); diags.HasErrors() {
		return grid.Cell{}, diags
	}
	if len(rc) != 2 {
		return grid.Cell{}, fmt.Errorf("want [row, col], got %d values", len(rc))
	}

	return grid.Cell{Row: rc[0], Col: rc[1]}, nil
}
