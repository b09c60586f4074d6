// Package plot runs the full L-system pipeline: parse rules, expand the
// axiom, trace the turtle, and collect summary statistics. It is the
// single entry point the CLI and TUI call; every configuration error is
// returned from here before any drawing begins.
package plot

import (
	"strings"

	"github.com/san-kum/growlab/internal/lsys"
	"github.com/san-kum/growlab/internal/turtle"
)

// DefaultAxiom is used when the configured axiom is blank.
const DefaultAxiom = "F"

// Config is one complete run request.
type Config struct {
	Axiom      string
	RulesText  string
	Iterations int
	AngleDeg   float64
	Step       float64

	// Draw selects the drawing symbols; empty means uppercase letters.
	Draw string

	// MaxLen caps the expanded length in bytes. Zero selects
	// lsys.DefaultMaxLen; negative disables the cap.
	MaxLen int
}

func (c Config) maxLen() int {
	switch {
	case c.MaxLen == 0:
		return lsys.DefaultMaxLen
	case c.MaxLen < 0:
		return 0
	default:
		return c.MaxLen
	}
}

// Result is the artifact handed to rendering: the ordered segments plus
// the stats shown in the UI.
type Result struct {
	Expanded     string
	Segments     []turtle.Segment
	ExpandedLen  int
	SegmentCount int
	Depth        int
}

// Run executes the pipeline for cfg. It validates everything up front and
// performs no drawing; callers hand Result.Segments to a scheduler or a
// direct draw.
func Run(cfg Config) (*Result, error) {
	axiom := strings.TrimSpace(cfg.Axiom)
	if axiom == "" {
		axiom = DefaultAxiom
	}

	tcfg := turtle.Config{Step: cfg.Step, AngleDeg: cfg.AngleDeg, Draw: cfg.Draw}
	if err := tcfg.Validate(); err != nil {
		return nil, err
	}

	rules, err := lsys.ParseRules(cfg.RulesText)
	if err != nil {
		return nil, err
	}

	expanded, err := lsys.ExpandBounded(axiom, rules, cfg.Iterations, cfg.maxLen())
	if err != nil {
		return nil, err
	}

	segments := turtle.Trace(expanded, tcfg)

	return &Result{
		Expanded:     expanded,
		Segments:     segments,
		ExpandedLen:  len([]rune(expanded)),
		SegmentCount: len(segments),
		Depth:        turtle.StackDepth(expanded),
	}, nil
}

// Growth returns the expanded length per generation for cfg, for the
// growth chart. It shares Run's axiom defaulting and rule parsing but
// never materialises the strings.
func Growth(cfg Config) ([]int, error) {
	axiom := strings.TrimSpace(cfg.Axiom)
	if axiom == "" {
		axiom = DefaultAxiom
	}
	if cfg.Iterations < 0 {
		return nil, lsys.ErrInvalidIterations
	}

	rules, err := lsys.ParseRules(cfg.RulesText)
	if err != nil {
		return nil, err
	}
	return lsys.Lengths(axiom, rules, cfg.Iterations), nil
}
