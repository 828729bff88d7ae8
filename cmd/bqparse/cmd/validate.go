package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oarkflow/bibquery/query"
)

var validateQuery string

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a query without producing its canonical expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateQuery, "query", "q", "", "query text, instead of a file or stdin")
}

func runValidate(cmd *cobra.Command, args []string) error {
	input, err := readInput(validateQuery, args)
	if err != nil {
		return err
	}

	if err := query.Validate(input); err != nil {
		fmt.Fprintln(os.Stderr, formatParseError(err))
		return err
	}

	fmt.Println("ok")
	return nil
}
