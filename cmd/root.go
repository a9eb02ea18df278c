// =============================================================================
// Work History Formatter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The formatter has a
// single job, so the root command does the work itself; there are no
// subcommands.
//
// COMMAND USAGE:
//   work-history-formatter <input.csv> [output.txt] [flags]
//
// FLAGS:
//   --config   : Optional YAML report configuration
//   --strict   : Abort on the first malformed row instead of skipping it
//   --verbose  : Enable debug logging on stderr
//   --version  : Print version information
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional report configuration file.
var cfgFile string

// strict aborts the run on the first malformed row.
var strict bool

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. It formats one input file.
var rootCmd = &cobra.Command{
	Use:   "work-history-formatter <input.csv> [output.txt]",
	Short: "Format a work history CSV into a plain-text report",
	Long: `Work History Formatter reads a CSV export of employment records and writes
a numbered plain-text report with one block per employment period.

The input must have a header row followed by eight columns per record:
  Company, Job Title, Start Date, End Date, Address, Supervisor Name,
  Description, Reason

Dates are read as MM/DD/YYYY and written as MM/YYYY. The location is the
last two comma-separated parts of the address. Workbooks (.xlsx, .xlsm)
are read from their first sheet.

If no output path is given, the report is written to
formatted_work_history.txt in the current directory.

Example Usage:
  work-history-formatter history.csv
  work-history-formatter history.csv resume.txt
  work-history-formatter history.csv --strict
  work-history-formatter history.xlsx --config report.yaml`,

	Args: cobra.RangeArgs(1, 2),

	// Argument errors are reported before PreRun and still print usage.
	PreRun: func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd, args)
	},

	SilenceErrors: true,
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.Flags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional YAML report configuration",
	)

	rootCmd.Flags().BoolVar(
		&strict,
		"strict",
		false,
		"Abort on the first malformed row instead of skipping it",
	)

	rootCmd.Flags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(versionTemplate())
}
