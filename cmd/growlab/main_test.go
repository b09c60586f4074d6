package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/growlab/internal/plot"
)

func TestTruncatePreview(t *testing.T) {
	assert.Equal(t, "abc", truncatePreview("abc", 5))
	assert.Equal(t, "abc", truncatePreview("abc", 3))
	assert.Equal(t, "ab...", truncatePreview("abcd", 2))

	// Cuts on a rune boundary, never mid-symbol.
	got := truncatePreview(strings.Repeat("λ", 10), 4)
	assert.Equal(t, "λλλλ...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestDotsSVG(t *testing.T) {
	res, err := plot.Run(plot.Config{
		Axiom:      "F",
		RulesText:  "F=F[+F]F[-F]F",
		Iterations: 2,
		AngleDeg:   25,
		Step:       5,
	})
	require.NoError(t, err)

	svg := dotsSVG(res, 400)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "<circle", "dots rendering draws the braille cells")
}
