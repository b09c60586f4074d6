package lsys

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rules maps a single symbol to its replacement string. Symbols absent
// from the table expand to themselves.
type Rules map[rune]string

// ParseRules builds a rule table from newline-separated "LHS=RHS" lines.
// Blank lines and lines starting with '#' are skipped; whitespace around
// both sides is trimmed. The left-hand side must be exactly one symbol;
// an empty LHS is rejected. When the same LHS appears more than once the
// last line wins, so parsing stays a single forward pass.
func ParseRules(text string) (Rules, error) {
	rules := make(Rules)

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhs, rhs, found := strings.Cut(line, "=")
		if !found {
			return nil, &RuleError{
				Line:    i + 1,
				Raw:     line,
				Wrapped: fmt.Errorf("%w: missing '='", ErrMalformedRule),
			}
		}

		lhs = strings.TrimSpace(lhs)
		if utf8.RuneCountInString(lhs) != 1 {
			return nil, &RuleError{
				Line:    i + 1,
				Raw:     line,
				Wrapped: fmt.Errorf("%w: left side must be a single symbol", ErrMalformedRule),
			}
		}

		sym, _ := utf8.DecodeRuneInString(lhs)
		rules[sym] = strings.TrimSpace(rhs)
	}

	return rules, nil
}

// Replacement returns the expansion of sym, which is sym itself when no
// rule exists for it.
func (r Rules) Replacement(sym rune) string {
	if rep, ok := r[sym]; ok {
		return rep
	}
	return string(sym)
}
