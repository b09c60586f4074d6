package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/growlab/internal/lsys"
	"github.com/san-kum/growlab/internal/turtle"
)

func validConfig() Config {
	return Config{
		Axiom:      "F",
		RulesText:  "F=F[+F]F[-F]F",
		Iterations: 2,
		AngleDeg:   25,
		Step:       5,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	res, err := Run(validConfig())
	require.NoError(t, err)

	// Every drawing symbol of the expanded string emits exactly one segment.
	wantSegs := strings.Count(res.Expanded, "F")
	assert.Equal(t, wantSegs, res.SegmentCount)
	assert.Len(t, res.Segments, wantSegs)
	assert.Equal(t, len([]rune(res.Expanded)), res.ExpandedLen)
	assert.Equal(t, 2, res.Depth)
}

func TestRun_BlankAxiomDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Axiom = "   "
	cfg.Iterations = 0

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultAxiom, res.Expanded)
	assert.Equal(t, 1, res.SegmentCount)
}

func TestRun_Deterministic(t *testing.T) {
	a, err := Run(validConfig())
	require.NoError(t, err)
	b, err := Run(validConfig())
	require.NoError(t, err)

	require.Equal(t, a.Expanded, b.Expanded)
	require.Equal(t, a.Segments, b.Segments)
}

func TestRun_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"negative iterations", func(c *Config) { c.Iterations = -1 }, lsys.ErrInvalidIterations},
		{"nan angle", func(c *Config) { c.AngleDeg = math.NaN() }, turtle.ErrInvalidAngle},
		{"zero step", func(c *Config) { c.Step = 0 }, turtle.ErrInvalidStep},
		{"malformed rule", func(c *Config) { c.RulesText = "AB=C" }, lsys.ErrMalformedRule},
		{"rule without separator", func(c *Config) { c.RulesText = "F" }, lsys.ErrMalformedRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			_, err := Run(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_ExpansionCap(t *testing.T) {
	cfg := validConfig()
	cfg.Iterations = 8
	cfg.MaxLen = 1000

	_, err := Run(cfg)
	assert.ErrorIs(t, err, lsys.ErrExpansionTooLarge)
}

func TestRun_CapDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.Iterations = 3
	cfg.MaxLen = -1

	_, err := Run(cfg)
	assert.NoError(t, err)
}

func TestGrowth(t *testing.T) {
	cfg := Config{Axiom: "A", RulesText: "A=AB\nB=A", Iterations: 4}
	lengths, err := Growth(cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5, 8}, lengths)
}

func TestGrowth_Errors(t *testing.T) {
	_, err := Growth(Config{Axiom: "F", RulesText: "=X", Iterations: 2})
	assert.ErrorIs(t, err, lsys.ErrMalformedRule)

	_, err = Growth(Config{Axiom: "F", Iterations: -2})
	assert.ErrorIs(t, err, lsys.ErrInvalidIterations)
}
