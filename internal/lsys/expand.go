package lsys

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLen bounds expansion growth. Rewriting is exponential in the
// number of non-inert symbols, so an unchecked iteration count can exhaust
// memory long before the turtle ever runs.
const DefaultMaxLen = 4_000_000

// Expand rewrites the axiom for the given number of generations with the
// default length cap. Zero generations return the axiom unchanged.
func Expand(axiom string, rules Rules, iterations int) (string, error) {
	return ExpandBounded(axiom, rules, iterations, DefaultMaxLen)
}

// ExpandBounded is Expand with an explicit length cap in bytes. A cap of
// zero or less disables the check.
func ExpandBounded(axiom string, rules Rules, iterations, maxLen int) (string, error) {
	if iterations < 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	cur := axiom
	for i := 0; i < iterations; i++ {
		cur = rewrite(cur, rules)
		if maxLen > 0 && len(cur) > maxLen {
			return "", fmt.Errorf("%w: %d bytes after generation %d (cap %d)",
				ErrExpansionTooLarge, len(cur), i+1, maxLen)
		}
	}
	return cur, nil
}

// rewrite produces one generation: every symbol is replaced by its rule
// table entry, in original order.
func rewrite(s string, rules Rules) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, sym := range s {
		if rep, ok := rules[sym]; ok {
			b.WriteString(rep)
		} else {
			b.WriteRune(sym)
		}
	}
	return b.String()
}

// Lengths returns the expanded length (in symbols) for each generation
// from 0 through iterations. It tracks per-symbol counts instead of
// building the strings, so it stays cheap even where Expand would not.
func Lengths(axiom string, rules Rules, iterations int) []int {
	counts := make(map[rune]int)
	for _, sym := range axiom {
		counts[sym]++
	}

	// Per-rule symbol frequencies, computed once.
	freqs := make(map[rune]map[rune]int, len(rules))
	for sym, rep := range rules {
		f := make(map[rune]int)
		for _, r := range rep {
			f[r]++
		}
		freqs[sym] = f
	}

	lengths := make([]int, 0, iterations+1)
	lengths = append(lengths, utf8.RuneCountInString(axiom))

	for i := 0; i < iterations; i++ {
		next := make(map[rune]int, len(counts))
		for sym, n := range counts {
			if f, ok := freqs[sym]; ok {
				for r, k := range f {
					next[r] += n * k
				}
			} else {
				next[sym] += n
			}
		}
		counts = next

		total := 0
		for _, n := range counts {
			total += n
		}
		lengths = append(lengths, total)
	}

	return lengths
}
