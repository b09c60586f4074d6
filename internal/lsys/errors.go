package lsys

import (
	"errors"
	"fmt"
)

// Domain errors for grammar parsing and expansion.
var (
	// ErrMalformedRule indicates a rule line that is not "X=replacement".
	ErrMalformedRule = errors.New("lsys: malformed rule")

	// ErrInvalidIterations indicates a negative iteration count.
	ErrInvalidIterations = errors.New("lsys: iteration count must be non-negative")

	// ErrExpansionTooLarge indicates the expansion exceeded the length cap.
	ErrExpansionTooLarge = errors.New("lsys: expansion exceeds maximum length")
)

// RuleError wraps a malformed-rule error with its source line.
type RuleError struct {
	Line    int
	Raw     string
	Wrapped error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Raw, e.Wrapped)
}

func (e *RuleError) Unwrap() error {
	return e.Wrapped
}
