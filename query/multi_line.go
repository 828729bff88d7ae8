package query

import "strings"

// ParseMultiLine validates and parses a multi-line input — an odd number
// (>= 3) of logical lines where every odd-indexed line is a single operator
// token and every even-indexed line is an independently valid single-line
// query with its own parentheses balanced on that line alone (the
// no-cross-line-parentheses rule). It assembles the content lines
// left-associatively under the single shared operator.
func ParseMultiLine(lines []string) (string, error) {
	if len(lines) < 3 || len(lines)%2 == 0 {
		return "", errf(ErrBadMultiLineStructure, "multi-line input must have an odd number of lines >= 3, got %d", len(lines))
	}

	var sharedOp Operator
	haveOp := false

	for i := 1; i < len(lines); i += 2 {
		word := strings.TrimSpace(lines[i])
		if word == "" || strings.ContainsAny(word, " \t") {
			return "", errfLine(ErrBadMultiLineStructure, i+1, "expected a single operator token, got %q", lines[i])
		}
		op, ok := normalizeOp(word)
		if !ok {
			return "", errfLine(ErrBadMultiLineStructure, i+1, "unrecognized operator %q", word)
		}
		if !haveOp {
			sharedOp = op
			haveOp = true
		} else if sharedOp != op {
			return "", errfLine(ErrMixedOperatorsMultiLine, i+1, "operator %s conflicts with earlier operator %s; all operator lines in a multi-line query must agree", op, sharedOp)
		}
	}

	canonicalParts := make([]string, 0, (len(lines)+1)/2)
	for i := 0; i < len(lines); i += 2 {
		content := strings.TrimSpace(lines[i])
		if content == "" {
			return "", errfLine(ErrEmptyAtom, i+1, "empty content line")
		}
		if !IsBalanced(content) {
			return "", errfLine(ErrCrossLineParens, i+1, "parentheses opened on this line must also close on this line")
		}
		part, err := ParseSingleLine(content)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Line = i + 1
				return "", pe
			}
			return "", err
		}
		canonicalParts = append(canonicalParts, part)
	}

	result := canonicalParts[0]
	for _, part := range canonicalParts[1:] {
		result = "(" + result + " " + sharedOp.String() + " " + part + ")"
	}
	return result, nil
}

// ValidateMultiLine reports whether lines form a valid multi-line query,
// discarding the canonical result.
func ValidateMultiLine(lines []string) error {
	_, err := ParseMultiLine(lines)
	return err
}
