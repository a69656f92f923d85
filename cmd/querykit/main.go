// Package main is the querykit command.
package main

import (
	"os"

	"github.com/leapstack-labs/querykit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
