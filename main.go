// =============================================================================
// Work History Formatter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Work History Formatter CLI. It hands
// control to the Cobra root command in the cmd package.
//
// USAGE:
//   work-history-formatter <input.csv> [output.txt]
//
// ARCHITECTURE:
//   - cmd/           : CLI command definition (Cobra)
//   - internal/      : Parsing, validation, transformation and report writing
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/work-history-formatter/cmd"
)

func main() {
	cmd.Execute()
}
