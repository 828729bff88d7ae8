package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oarkflow/bibquery/query"
)

var tokenizeQuery string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize a single logical line and print one token per line",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeQuery, "query", "q", "", "line text, instead of a file or stdin")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	input, err := readInput(tokenizeQuery, args)
	if err != nil {
		return err
	}

	tokens, err := query.TokenizeLine(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatParseError(err))
		return err
	}

	for _, t := range tokens {
		fmt.Printf("%s\t%s\n", t.Kind, t.Text)
	}
	return nil
}
