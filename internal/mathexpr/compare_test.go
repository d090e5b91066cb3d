package mathexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareCommutativeMultiplication(t *testing.T) {
	matched, score, err := Compare("F = m * a", "F = a * m")
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 1.0, score)
}

func TestCompareNaturalLanguageAgainstSymbols(t *testing.T) {
	matched, score, err := Compare("force equals mass times acceleration", "F = m * a")
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 1.0, score)
}

func TestCompareAlgebraicRearrangement(t *testing.T) {
	matched, _, err := Compare("2*x + 2*y", "2*(x + y)")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestCompareDistinctExpressions(t *testing.T) {
	matched, score, err := Compare("F = m * a", "F = m + a")
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, 0.0, score)
}

func TestCompareRejectsDescriptions(t *testing.T) {
	matched, score, err := Compare("formula for kinetic energy", "KE = 0.5*m*v**2")
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, 0.0, score)
}

func TestCompareCaretExponent(t *testing.T) {
	matched, _, err := Compare("E = m*c^2", "E = c**2 * m")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestCompareStringFallbackOnParseFailure(t *testing.T) {
	// `@` is not a valid operator; identical garbage still matches via
	// the prepared-string fallback
	matched, score, err := Compare("x @ y", "x @ y")
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 1.0, score)
}

func TestCompareParseErrorSurfacesWhenFallbackMisses(t *testing.T) {
	matched, score, err := Compare("x @ y", "x @ z")
	assert.False(t, matched)
	assert.Equal(t, 0.0, score)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestCompareIdempotent(t *testing.T) {
	m1, s1, err1 := Compare("F = m * a", "F = a * m")
	m2, s2, err2 := Compare("F = m * a", "F = a * m")
	assert.Equal(t, m1, m2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, err1, err2)
}

func TestEquivalentDistinguishesVariables(t *testing.T) {
	// "ma" is one identifier, not m*a
	eq, err := Equivalent("F - m * a", "F - ma")
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestResidualRewritesEquations(t *testing.T) {
	r, err := residual("a = b")
	require.NoError(t, err)
	assert.Equal(t, "(a) - (b)", r)

	r, err = residual("a + b")
	require.NoError(t, err)
	assert.Equal(t, "a + b", r)

	_, err = residual("a = b = c")
	assert.Error(t, err)
}
