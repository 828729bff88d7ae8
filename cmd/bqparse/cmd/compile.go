package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oarkflow/bibquery/dialect"
	"github.com/oarkflow/bibquery/query"
)

var (
	compileQuery   string
	compileDialect string
	compileRules   string
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Parse a query and compile it for a target database dialect",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileQuery, "query", "q", "", "query text, instead of a file or stdin")
	compileCmd.Flags().StringVar(&compileDialect, "dialect", string(dialect.PubMed), "target dialect: pubmed, europepmc, cochrane")
	compileCmd.Flags().StringVar(&compileRules, "rules", "", "path to a YAML syntax-rule resource overriding the built-in defaults")
}

func runCompile(cmd *cobra.Command, args []string) error {
	input, err := readInput(compileQuery, args)
	if err != nil {
		return err
	}

	result, err := query.Parse(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatParseError(err))
		return err
	}

	d := dialect.Dialect(compileDialect)
	var rules *dialect.Rules
	if compileRules != "" {
		rules, err = dialect.LoadRules(compileRules)
	} else {
		rules, err = dialect.DefaultRules(d)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}

	compiled, warnings, err := dialect.New(d, rules, log).Compile(result.Canonical)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: [%s] %s\n", w.Code, w.Message)
	}
	fmt.Println(compiled)
	return nil
}
