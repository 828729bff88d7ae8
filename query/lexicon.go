package query

import "strings"

// operatorLexicon is the closed, read-only mapping from recognized input
// spellings (English and German) to their canonical Operator. It is
// initialized once and never mutated.
var operatorLexicon = map[string]Operator{
	"and": OpAND,
	"und": OpAND,

	"or":   OpOR,
	"oder": OpOR,

	"not":   OpNOT,
	"nicht": OpNOT,
	"kein":  OpNOT,
	"keine": OpNOT,
	"ohne":  OpNOT,
}

// normalizeOp maps a surface operator word onto its canonical Operator.
// Comparison is case-insensitive; absence is not an error at this layer,
// it is information the caller (the token classifier) consumes.
func normalizeOp(word string) (Operator, bool) {
	op, ok := operatorLexicon[strings.ToLower(word)]
	return op, ok
}
