package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "bqparse",
	Short: "Parse, validate, and compile boolean literature-search queries",
	Long: `bqparse validates and parses human-authored boolean search queries
targeting scientific bibliographic databases (PubMed, Europe PMC, Cochrane).

It returns a fully parenthesized canonical form, a precise syntactic
diagnostic, or a dialect-specific compiled query.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		log.SetLevel(level)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
}

// readInput resolves the query text from an explicit flag value, a single
// positional file argument, or stdin, in that priority order.
func readInput(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
