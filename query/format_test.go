package query

import "testing"

func TestDetectFormatSingleLine(t *testing.T) {
	got := DetectFormat([]string{`"cancer"[MeSH] AND "treatment"`})
	if got != SingleLine {
		t.Errorf("got %v, want SingleLine", got)
	}
}

func TestDetectFormatMultiLine(t *testing.T) {
	got := DetectFormat([]string{
		`"cancer"[MeSH]`,
		"AND",
		`"treatment outcome"`,
	})
	if got != MultiLine {
		t.Errorf("got %v, want MultiLine", got)
	}
}

func TestDetectFormatEvenCountIsSingleLine(t *testing.T) {
	got := DetectFormat([]string{
		`"cancer"[MeSH]`,
		"AND",
	})
	if got != SingleLine {
		t.Errorf("got %v, want SingleLine", got)
	}
}

func TestDetectFormatOperatorLineWithMultipleWordsIsSingleLine(t *testing.T) {
	got := DetectFormat([]string{
		`"cancer"[MeSH]`,
		"AND NOT",
		`"treatment outcome"`,
	})
	if got != SingleLine {
		t.Errorf("got %v, want SingleLine: multi-word operator line disqualifies MultiLine", got)
	}
}

func TestDetectFormatUnrecognizedOperatorWordIsSingleLine(t *testing.T) {
	got := DetectFormat([]string{
		`"cancer"[MeSH]`,
		"xor",
		`"treatment outcome"`,
	})
	if got != SingleLine {
		t.Errorf("got %v, want SingleLine", got)
	}
}
