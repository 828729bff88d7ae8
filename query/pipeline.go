package query

import (
	"strings"

	"github.com/oarkflow/bibquery/preprocess"
)

// Result is the successful outcome of Parse: the format the input was
// classified as, plus its canonical, fully parenthesized expression.
type Result struct {
	Format    FormatTag
	Canonical string
}

// ErrEmptyInput is returned when preprocessing a raw query leaves no
// logical lines at all (the input was entirely blank lines and comments).
// It is a single shared *ParseError value, returned before format detection
// runs, and carries the ErrBadMultiLineStructure kind.
var ErrEmptyInput = errf(ErrBadMultiLineStructure, "input contains no logical lines")

// Parse runs the full pipeline: preprocess -> detect_format ->
// (single-line OR multi-line) -> normalize. It is the library's primary
// entry point.
func Parse(input string) (Result, error) {
	lines := preprocess.Lines(input)
	if len(lines) == 0 {
		return Result{}, ErrEmptyInput
	}

	format := DetectFormat(lines)

	var canonical string
	var err error
	switch format {
	case MultiLine:
		canonical, err = ParseMultiLine(lines)
	default:
		canonical, err = ParseSingleLine(strings.Join(lines, " "))
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Format: format, Canonical: NormalizeOperators(canonical)}, nil
}

// Validate runs the same pipeline as Parse but discards the canonical
// result, reporting only whether the input is syntactically valid.
func Validate(input string) error {
	_, err := Parse(input)
	return err
}
