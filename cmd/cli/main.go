// Package main is the entry point for the brewcalc CLI.
package main

import (
	"os"

	"beer-recipe/cmd/cli/cmd"
	"beer-recipe/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
