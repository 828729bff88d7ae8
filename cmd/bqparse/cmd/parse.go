package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oarkflow/bibquery/query"
)

var parseQuery string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a query and print its canonical expression",
	Long: `Parse a query and print its canonical, fully parenthesized expression.

If no file is provided, reads from stdin. Use -q to pass the query inline.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseQuery, "query", "q", "", "query text, instead of a file or stdin")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(parseQuery, args)
	if err != nil {
		return err
	}

	result, err := query.Parse(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatParseError(err))
		return err
	}

	fmt.Printf("%s\n%s\n", result.Format, result.Canonical)
	return nil
}

func formatParseError(err error) string {
	if pe, ok := err.(*query.ParseError); ok {
		return "error: " + pe.Error()
	}
	return "error: " + err.Error()
}
