// =============================================================================
// Work History Formatter - Processing
// =============================================================================
//
// This file runs the formatter for the root command.
//
// PROCESSING PIPELINE:
//   1. Load the report configuration (defaults, or --config)
//   2. Apply command-line overrides (--strict, --verbose)
//   3. Resolve the output path
//   4. Run the converter
//   5. Report the result
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/work-history-formatter/internal/config"
	"github.com/ginjaninja78/work-history-formatter/internal/converter"
	"github.com/ginjaninja78/work-history-formatter/internal/validation"
	"github.com/ginjaninja78/work-history-formatter/pkg/utils"
	"github.com/spf13/cobra"
)

// runProcess formats args[0] into args[1], or into the configured default
// output path when only the input is given.
func runProcess(cmd *cobra.Command, args []string) error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: RESOLVE PATHS
	// =========================================================================

	inputPath := args[0]

	var explicitOutput string
	if len(args) > 1 {
		explicitOutput = args[1]
	}
	outputPath := utils.ResolveOutputPath(explicitOutput, cfg.DefaultOutput)

	// =========================================================================
	// STEP 3: RUN
	// =========================================================================

	logger := converter.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	result := converter.New(inputPath, outputPath, cfg, logger).Run()
	if result.Error != nil {
		return result.Error
	}

	if result.Stats.RowsSkipped > 0 {
		logger.Info("Skipped %d malformed row(s)", result.Stats.RowsSkipped)
		logger.Debug("%s", validation.FormatErrors(result.Skipped))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully created %s\n", result.OutputFile)
	return nil
}

// loadConfig returns the report configuration with flag overrides applied.
func loadConfig(cmd *cobra.Command) (*config.ReportConfig, error) {
	cfg := config.DefaultReportConfig()

	if cfgFile != "" {
		loaded, err := config.LoadReportConfig(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("strict") {
		cfg.Strict = strict
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}
