package query

import "strings"

// FormatTag is assigned once per input before parsing proceeds.
type FormatTag uint8

const (
	// SingleLine queries are a single logical expression, possibly spread
	// across several physical lines.
	SingleLine FormatTag = iota
	// MultiLine queries alternate content lines with single-operator
	// lines.
	MultiLine
)

func (f FormatTag) String() string {
	if f == MultiLine {
		return "MultiLine"
	}
	return "SingleLine"
}

// DetectFormat classifies a non-empty sequence of logical lines. Rules,
// applied in order:
//
//  1. Exactly one line -> SingleLine.
//  2. An odd number of lines >= 3, where every odd-indexed line (1, 3, 5,
//     ...) is a single token accepted by normalizeOp -> MultiLine.
//  3. Otherwise -> SingleLine.
func DetectFormat(lines []string) FormatTag {
	if len(lines) == 1 {
		return SingleLine
	}
	if len(lines) >= 3 && len(lines)%2 == 1 && everyOddLineIsOperator(lines) {
		return MultiLine
	}
	return SingleLine
}

func everyOddLineIsOperator(lines []string) bool {
	for i := 1; i < len(lines); i += 2 {
		word := strings.TrimSpace(lines[i])
		if strings.ContainsAny(word, " \t") {
			return false
		}
		if word == "" {
			return false
		}
		if _, ok := normalizeOp(word); !ok {
			return false
		}
	}
	return true
}
