// Package main provides the chtlcheck CLI for validating CHTL sources.
package main

import (
	"os"

	"github.com/leapstack-labs/chtlcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
