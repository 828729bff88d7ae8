package dialect

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed resources/*.yaml
var defaultResources embed.FS

// Rules is the external syntax-rule resource a dialect compiler loads once
// at construction and holds immutably thereafter, grounded on the
// struct-tagged gopkg.in/yaml.v3 config loading in the example pack's SQL
// tooling.
type Rules struct {
	DialectName       string            `yaml:"dialect"`
	FieldCodeMap      map[string]string `yaml:"field_code_map"`
	DateRangeTemplate string            `yaml:"date_range_template"`
	MaxQueryLength    int               `yaml:"max_query_length"`
	MaxNestingDepth   int               `yaml:"max_nesting_depth"`
	MaxOperators      int               `yaml:"max_operators"`
}

// RenderDateRange fills DateRangeTemplate with the lower and upper year
// bounds, referenced by name as {{.Lower}} and {{.Upper}}.
func (r *Rules) RenderDateRange(lower, upper string) string {
	if r == nil || r.DateRangeTemplate == "" {
		return fmt.Sprintf("%s:%s", lower, upper)
	}
	tmpl, err := template.New("date_range").Parse(r.DateRangeTemplate)
	if err != nil {
		return fmt.Sprintf("%s:%s", lower, upper)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Lower, Upper string }{lower, upper}); err != nil {
		return fmt.Sprintf("%s:%s", lower, upper)
	}
	return buf.String()
}

// DefaultRules loads the built-in syntax-rule resource embedded for d.
func DefaultRules(d Dialect) (*Rules, error) {
	data, err := defaultResources.ReadFile("resources/" + string(d) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("dialect: no built-in rules for %q: %w", d, err)
	}
	return parseRules(data)
}

// LoadRules reads a syntax-rule resource document from path. The document's
// dialect field is stored in DialectName but not otherwise consulted: the
// caller decides which dialect the rules are compiled for.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dialect: reading rules file %s: %w", path, err)
	}
	return parseRules(data)
}

func parseRules(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("dialect: parsing rules: %w", err)
	}
	return &r, nil
}
