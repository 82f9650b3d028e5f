// Package main provides the guidelint command.
package main

import (
	"os"

	"github.com/leapstack-labs/guidelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
