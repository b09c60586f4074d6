// Package turtle interprets expanded L-system strings as 2D line segments.
//
// The interpreter is a single-pass state machine over the string: drawing
// symbols advance the cursor and emit a segment, '+'/'-' rotate in place,
// '[' and ']' save and restore state on a stack, and everything else is
// inert. Coordinates are turtle-local; mapping them onto a pixel surface
// is the presentation layer's job.
package turtle

import (
	"errors"
	"math"
	"strings"
)

// Domain errors for interpreter configuration.
var (
	// ErrInvalidAngle indicates a NaN or infinite turn angle.
	ErrInvalidAngle = errors.New("turtle: angle must be finite")

	// ErrInvalidStep indicates a step length that is not positive and finite.
	ErrInvalidStep = errors.New("turtle: step must be positive and finite")
)

// Segment is one drawn line in turtle-local coordinates. The y axis grows
// down-screen, matching the raster convention of the canvas layer.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Config holds the interpreter parameters for one trace.
type Config struct {
	// Step is the distance covered by one drawing symbol.
	Step float64

	// AngleDeg is the turn applied by '+' and '-', in degrees.
	AngleDeg float64

	// Draw lists the symbols that advance the turtle and emit a segment.
	// Empty means the default set: any uppercase ASCII letter.
	Draw string
}

// Validate checks the parameters the interpreter itself assumes valid.
func (c Config) Validate() error {
	if math.IsNaN(c.AngleDeg) || math.IsInf(c.AngleDeg, 0) {
		return ErrInvalidAngle
	}
	if c.Step <= 0 || math.IsNaN(c.Step) || math.IsInf(c.Step, 0) {
		return ErrInvalidStep
	}
	return nil
}

func (c Config) draws(sym rune) bool {
	if c.Draw != "" {
		return strings.ContainsRune(c.Draw, sym)
	}
	return sym >= 'A' && sym <= 'Z'
}

// state is the turtle's pose: position plus heading in radians.
type state struct {
	x, y, heading float64
}

// Trace walks s left to right and returns the ordered segment sequence.
// The turtle starts at the origin heading up (-pi/2); each call starts
// fresh, no state survives between traces. Popping an empty stack is a
// no-op, so unbalanced ']' never fails. Config is assumed pre-validated.
func Trace(s string, cfg Config) []Segment {
	angle := cfg.AngleDeg * math.Pi / 180

	cur := state{heading: -math.Pi / 2}
	var stack []state
	segments := make([]Segment, 0, len(s)/2)

	for _, sym := range s {
		switch {
		case cfg.draws(sym):
			nx := cur.x + cfg.Step*math.Cos(cur.heading)
			ny := cur.y + cfg.Step*math.Sin(cur.heading)
			segments = append(segments, Segment{cur.x, cur.y, nx, ny})
			cur.x, cur.y = nx, ny
		case sym == '+':
			cur.heading += angle
		case sym == '-':
			cur.heading -= angle
		case sym == '[':
			stack = append(stack, cur)
		case sym == ']':
			if n := len(stack); n > 0 {
				cur = stack[n-1]
				stack = stack[:n-1]
			}
		}
	}

	return segments
}

// StackDepth returns the maximum '['/']' nesting depth of s, the bound on
// the interpreter's stack for that string.
func StackDepth(s string) int {
	depth, max := 0, 0
	for _, sym := range s {
		switch sym {
		case '[':
			depth++
			if depth > max {
				max = depth
			}
		case ']':
			if depth > 0 {
				depth--
			}
		}
	}
	return max
}
