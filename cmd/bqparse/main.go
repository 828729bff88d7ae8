// Command bqparse is the thin CLI front door over the query and dialect
// packages: it reads a query, runs the parse/validate/compile/tokenize
// pipeline, and reports either the result or a formatted diagnostic.
package main

import (
	"os"

	"github.com/oarkflow/bibquery/cmd/bqparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
