// Package main is the entry point for cabinet-cost CLI.
package main

import (
	"os"

	"cabinet-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
