package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMultiLineScenario3(t *testing.T) {
	got, err := ParseMultiLine([]string{
		`"cancer" OR "tumor"`,
		"AND",
		`"treatment" OR "therapy"`,
	})
	require.NoError(t, err)
	assert.Equal(t, `(((cancer) OR (tumor)) AND ((treatment) OR (therapy)))`, got)
}

func TestParseMultiLineScenario6MixedOperators(t *testing.T) {
	_, err := ParseMultiLine([]string{
		`"cancer"`,
		"OR",
		`"tumor"`,
		"AND",
		`"treatment"`,
	})
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrMixedOperatorsMultiLine, pe.Kind)
}

func TestParseMultiLineThreeLines(t *testing.T) {
	got, err := ParseMultiLine([]string{
		`"cancer"[MeSH]`,
		"AND",
		`"treatment outcome"`,
	})
	require.NoError(t, err)
	assert.Equal(t, `(("cancer"[MeSH]) AND ("treatment outcome"))`, got)
}

func TestParseMultiLineFiveLinesLeftAssociative(t *testing.T) {
	got, err := ParseMultiLine([]string{
		`"a"`,
		"OR",
		`"b"`,
		"OR",
		`"c"`,
	})
	require.NoError(t, err)
	assert.Equal(t, `(((a) OR (b)) OR (c))`, got)
}

func TestParseMultiLineMixedOperatorsAcrossLines(t *testing.T) {
	_, err := ParseMultiLine([]string{
		`"a"`,
		"OR",
		`"b"`,
		"AND",
		`"c"`,
	})
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, ErrMixedOperatorsMultiLine, pe.Kind)
	assert.Equal(t, 4, pe.Line)
}

func TestParseMultiLineEvenLineCount(t *testing.T) {
	_, err := ParseMultiLine([]string{`"a"`, "OR", `"b"`, "OR"})
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, ErrBadMultiLineStructure, pe.Kind)
}

func TestParseMultiLineOperatorLineNotSingleToken(t *testing.T) {
	_, err := ParseMultiLine([]string{`"a"`, "OR NOT", `"b"`})
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, ErrBadMultiLineStructure, pe.Kind)
}

func TestParseMultiLineCrossLineParens(t *testing.T) {
	_, err := ParseMultiLine([]string{
		`("a"`,
		"AND",
		`"b")`,
	})
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, ErrCrossLineParens, pe.Kind)
}

func TestParseMultiLinePropagatesContentLineError(t *testing.T) {
	_, err := ParseMultiLine([]string{
		`"a" AND OR "b"`,
		"AND",
		`"c"`,
	})
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, ErrAdjacentOperators, pe.Kind)
	assert.Equal(t, 1, pe.Line)
}

func TestValidateMultiLineMirrorsParse(t *testing.T) {
	require.NoError(t, ValidateMultiLine([]string{`"a"`, "AND", `"b"`}))
	require.Error(t, ValidateMultiLine([]string{`"a"`, "AND", `"b"`, "OR", `"c"`, "AND", `"d"`}))
}
