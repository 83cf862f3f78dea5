// Package main is the sqlstream CLI entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlstream/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
