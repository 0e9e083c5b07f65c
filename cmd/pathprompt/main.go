// Package main provides the pathprompt command: interactive filesystem path
// questions with tab completion, answered as JSON.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/Cyclone1070/pathprompt/internal/ui"
	"github.com/fatih/color"
)

// exitInterrupted follows the shell convention for SIGINT (128 + 2).
const exitInterrupted = 130

func main() {
	rootCmd := newRootCommand(defaultDependencies())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, ui.ErrInterrupted) {
			os.Exit(exitInterrupted)
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
