// Package dialect rewrites a canonical boolean query expression into a
// target bibliographic database's surface syntax. It is a small collection
// of local, non-reparsing rewrites, grounded on the renderer-over-AST shape
// of the teacher's SQL dialect converter: a typed Dialect tag selects a
// *Rules value loaded once at construction. Field-term rewriting branches on
// the dialect tag: Cochrane strips every field code and PubMed keeps every
// field term unchanged, neither consulting field_code_map, while Europe PMC
// maps codes through field_code_map and renders year ranges with
// date_range_template. Any other dialect tag keeps field terms unchanged, so
// a dialect with rewrites of its own needs a change to this package, not only
// a new resource document.
package dialect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Dialect names a target database surface syntax.
type Dialect string

const (
	PubMed    Dialect = "pubmed"
	EuropePMC Dialect = "europepmc"
	Cochrane  Dialect = "cochrane"
)

// Warning is a non-fatal diagnostic surfaced alongside a successful
// compilation, e.g. an unknown field code that was passed through
// unchanged.
type Warning struct {
	Code    string
	Message string
}

// Compiler compiles canonical expressions for one Dialect. It holds an
// immutable *Rules loaded at construction and an optional logger that
// mirrors warnings into structured logs; neither is mutated after New.
type Compiler struct {
	dialect Dialect
	rules   *Rules
	log     logrus.FieldLogger
}

// New returns a Compiler for dialect using rules. If log is nil, warnings
// are only returned, never logged.
func New(d Dialect, rules *Rules, log logrus.FieldLogger) *Compiler {
	return &Compiler{dialect: d, rules: rules, log: log}
}

// CompileFor is the package-level convenience entry point matching the
// spec's compile_for_dialect operation: load the dialect's built-in default
// rules and compile in one call.
func CompileFor(canonical string, d Dialect) (string, []Warning, error) {
	rules, err := DefaultRules(d)
	if err != nil {
		return "", nil, err
	}
	return New(d, rules, nil).Compile(canonical)
}

// Compile rewrites a canonical expression into c's dialect surface form.
// Parentheses and AND/OR/NOT tokens always pass through unchanged; only
// field-term atoms (quoted-content plus bracketed field code) are rewritten,
// per the table in §4.10.
func (c *Compiler) Compile(canonical string) (string, []Warning, error) {
	var out strings.Builder
	var warnings []Warning

	i := 0
	for i < len(canonical) {
		ch := canonical[i]
		switch ch {
		case '(', ')', ' ':
			out.WriteByte(ch)
			i++
		case '"', '\'':
			span, content, code, next, ok := scanFieldTerm(canonical, i)
			if !ok {
				// A quoted phrase with no field code: not rewritten by any
				// dialect, copy verbatim.
				out.WriteString(span)
				i = next
				continue
			}
			rendered, warn := c.rewriteFieldTerm(content, code)
			out.WriteString(rendered)
			if warn != nil {
				warnings = append(warnings, *warn)
			}
			i = next
		default:
			// Operator word or bare word: copy the whole token verbatim.
			start := i
			for i < len(canonical) && canonical[i] != ' ' && canonical[i] != '(' && canonical[i] != ')' {
				i++
			}
			out.WriteString(canonical[start:i])
		}
	}

	if c.rules != nil {
		if max := c.rules.MaxQueryLength; max > 0 && out.Len() > max {
			c.warn(&warnings, "length", fmt.Sprintf("compiled query length %d exceeds dialect limit %d", out.Len(), max))
		}
	}

	return out.String(), warnings, nil
}

// scanFieldTerm attempts to read a "content"[CODE] span starting at i
// (where canonical[i] is a quote character). ok is false when the quoted
// region at i is not immediately followed by a bracketed code, in which
// case span/next describe the plain quoted phrase to copy verbatim.
func scanFieldTerm(s string, i int) (span, content, code string, next int, ok bool) {
	quote := s[i]
	j := i + 1
	for j < len(s) && s[j] != quote {
		j++
	}
	if j >= len(s) {
		return s[i:], "", "", len(s), false
	}
	closeIdx := j
	if closeIdx+1 >= len(s) || s[closeIdx+1] != '[' {
		return s[i : closeIdx+1], "", "", closeIdx + 1, false
	}
	k := closeIdx + 2
	for k < len(s) && s[k] != ']' {
		k++
	}
	if k >= len(s) {
		return s[i : closeIdx+1], "", "", closeIdx + 1, false
	}
	return s[i : k+1], s[i+1 : closeIdx], s[closeIdx+2 : k], k + 1, true
}

// rewriteFieldTerm applies §4.10's per-dialect rewrite table to one
// field-term atom.
func (c *Compiler) rewriteFieldTerm(content, code string) (string, *Warning) {
	if lower, upper, ok := parseYearRange(content); ok && strings.EqualFold(code, "pdat") {
		switch c.dialect {
		case EuropePMC:
			return c.rules.RenderDateRange(lower, upper), nil
		case Cochrane:
			// Strip the [pdat] tag but keep the quoted content.
			return fmt.Sprintf(`"%s"`, content), nil
		default: // PubMed and anything else: pass through unchanged.
			return fmt.Sprintf(`"%s"[%s]`, content, code), nil
		}
	}

	switch c.dialect {
	case Cochrane:
		return fmt.Sprintf(`"%s"`, content), nil
	case PubMed:
		return fmt.Sprintf(`"%s"[%s]`, content, code), nil
	case EuropePMC:
		mapped, warn := c.mapCode(code)
		if mapped == "" {
			return fmt.Sprintf(`"%s"`, content), warn
		}
		return fmt.Sprintf(`%s:"%s"`, mapped, content), warn
	default:
		return fmt.Sprintf(`"%s"[%s]`, content, code), nil
	}
}

// mapCode looks up code in the dialect's field_code_map, returning a
// warning when the code is unrecognized. Unknown codes pass through
// unchanged rather than failing the whole compilation.
func (c *Compiler) mapCode(code string) (string, *Warning) {
	if c.rules == nil {
		return code, nil
	}
	mapped, ok := c.rules.FieldCodeMap[code]
	if !ok {
		var w Warning
		c.warnPtr(&w, "unknown_field_code", fmt.Sprintf("unrecognized field code %q, passing through unchanged", code))
		return code, &w
	}
	switch mapped {
	case "STRIP":
		return "", nil
	case "PASS":
		return code, nil
	default:
		return mapped, nil
	}
}

func (c *Compiler) warn(warnings *[]Warning, code, msg string) {
	var w Warning
	c.warnPtr(&w, code, msg)
	*warnings = append(*warnings, w)
}

func (c *Compiler) warnPtr(w *Warning, code, msg string) {
	w.Code = code
	w.Message = msg
	if c.log != nil {
		c.log.WithField("code", code).Warn(msg)
	}
}

// parseYearRange recognizes a "YYYY:YYYY" date-range atom's content.
func parseYearRange(content string) (lower, upper string, ok bool) {
	parts := strings.SplitN(content, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	if !isYear(parts[0]) || !isYear(parts[1]) {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}
