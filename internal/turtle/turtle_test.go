package turtle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_SingleDraw(t *testing.T) {
	segs := Trace("F", Config{Step: 5, AngleDeg: 90})
	require.Len(t, segs, 1)

	assert.Zero(t, segs[0].X1)
	assert.Zero(t, segs[0].Y1)
	// Initial heading points up: -y in screen coordinates.
	assert.InDelta(t, 0, segs[0].X2, 1e-9)
	assert.InDelta(t, -5, segs[0].Y2, 1e-9)
}

func TestTrace_TurnsOnly(t *testing.T) {
	segs := Trace("++--+-", Config{Step: 1, AngleDeg: 45})
	assert.Empty(t, segs)
}

func TestTrace_SquarePath(t *testing.T) {
	// Four sides with 90 degree right turns close a unit square.
	segs := Trace("F+F+F+F", Config{Step: 1, AngleDeg: 90})
	require.Len(t, segs, 4)

	assert.InDelta(t, 0, segs[3].X2, 1e-9)
	assert.InDelta(t, 0, segs[3].Y2, 1e-9)
}

func TestTrace_BranchRestore(t *testing.T) {
	segs := Trace("F[+F]F", Config{Step: 1, AngleDeg: 90})
	require.Len(t, segs, 3)

	// The segment after ']' starts exactly where the first ended, with the
	// pre-branch heading restored.
	assert.Equal(t, segs[0].X2, segs[2].X1)
	assert.Equal(t, segs[0].Y2, segs[2].Y1)
	assert.Equal(t, segs[0].X2-segs[0].X1, segs[2].X2-segs[2].X1)
	assert.Equal(t, segs[0].Y2-segs[0].Y1, segs[2].Y2-segs[2].Y1)
}

func TestTrace_UnbalancedPop(t *testing.T) {
	// A ']' with nothing saved is a no-op, not an error.
	segs := Trace("]A", Config{Step: 2, AngleDeg: 30})
	require.Len(t, segs, 1)

	assert.Zero(t, segs[0].X1)
	assert.Zero(t, segs[0].Y1)
	assert.InDelta(t, -2, segs[0].Y2, 1e-9)
}

func TestTrace_InertSymbols(t *testing.T) {
	segs := Trace("xF?F!", Config{Step: 1, AngleDeg: 60})
	assert.Len(t, segs, 2)
}

func TestTrace_CustomDrawSet(t *testing.T) {
	cfg := Config{Step: 1, AngleDeg: 90, Draw: "FG"}
	segs := Trace("FXGY", cfg)
	require.Len(t, segs, 2)

	// X and Y are structural only: G continues from where F ended.
	assert.Equal(t, segs[0].X2, segs[1].X1)
	assert.Equal(t, segs[0].Y2, segs[1].Y1)
}

func TestTrace_Deterministic(t *testing.T) {
	cfg := Config{Step: 3, AngleDeg: 25}
	s := "F[+F]F[-F]F[+F[-F]]F"

	a := Trace(s, cfg)
	b := Trace(s, cfg)
	require.Equal(t, a, b)
}

func TestTrace_FreshStatePerCall(t *testing.T) {
	cfg := Config{Step: 1, AngleDeg: 90}

	// An unclosed branch must not leak into the next trace.
	Trace("F[+F", cfg)
	segs := Trace("]F", cfg)
	require.Len(t, segs, 1)
	assert.Zero(t, segs[0].X1)
	assert.Zero(t, segs[0].Y1)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid", Config{Step: 5, AngleDeg: 25}, nil},
		{"negative angle ok", Config{Step: 5, AngleDeg: -90}, nil},
		{"nan angle", Config{Step: 5, AngleDeg: math.NaN()}, ErrInvalidAngle},
		{"inf angle", Config{Step: 5, AngleDeg: math.Inf(1)}, ErrInvalidAngle},
		{"zero step", Config{Step: 0, AngleDeg: 25}, ErrInvalidStep},
		{"negative step", Config{Step: -1, AngleDeg: 25}, ErrInvalidStep},
		{"nan step", Config{Step: math.NaN(), AngleDeg: 25}, ErrInvalidStep},
		{"inf step", Config{Step: math.Inf(1), AngleDeg: 25}, ErrInvalidStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestStackDepth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"FFF", 0},
		{"F[+F]F", 1},
		{"F[[X]+[Y]]", 2},
		{"[[[F]]]", 3},
		{"]]]F[", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StackDepth(tt.s), "input %q", tt.s)
	}
}

func TestBounds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Rect{}, Bounds(nil))
	})

	t.Run("spans all endpoints", func(t *testing.T) {
		segs := []Segment{
			{0, 0, 1, -4},
			{1, -4, -2, 3},
		}
		r := Bounds(segs)
		assert.Equal(t, Rect{MinX: -2, MinY: -4, MaxX: 1, MaxY: 3}, r)
		assert.Equal(t, 3.0, r.Width())
		assert.Equal(t, 7.0, r.Height())
	})

	t.Run("degenerate point", func(t *testing.T) {
		r := Bounds([]Segment{{2, 2, 2, 2}})
		assert.Zero(t, r.Width())
		assert.Zero(t, r.Height())
	})
}
