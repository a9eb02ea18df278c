// =============================================================================
// Work History Formatter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the optional report configuration.
// The tool runs with built-in defaults; a YAML file passed with --config can
// override them.
//
// EXAMPLE (report.yaml):
//   default_output: formatted_work_history.txt
//   sort: input
//   strict: false
//   log_level: info
//   location:
//     drop_postal_code: false
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutputFile is used when no output path is given on the command line.
const DefaultOutputFile = "formatted_work_history.txt"

// Sort orders accepted by ReportConfig.Sort.
const (
	SortInput       = "input"
	SortEndDateDesc = "end_date_desc"
)

// =============================================================================
// REPORT CONFIGURATION STRUCTURE
// =============================================================================

// ReportConfig holds the settings for a single conversion run.
type ReportConfig struct {
	// DefaultOutput is the output path used when none is given on the command line.
	// Default: "formatted_work_history.txt"
	DefaultOutput string `yaml:"default_output"`

	// Sort controls block order.
	//   - "input"         : input row order
	//   - "end_date_desc" : most recent end date first
	// Default: "input"
	Sort string `yaml:"sort"`

	// Strict aborts the run on the first malformed row instead of skipping it.
	// Default: false
	Strict bool `yaml:"strict"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Location contains settings for the Location line.
	Location LocationSettings `yaml:"location"`
}

// LocationSettings contains settings for deriving "City, State" from an address.
type LocationSettings struct {
	// DropPostalCode keeps only the first word of the state segment,
	// so "IL 62704" becomes "IL".
	DropPostalCode bool `yaml:"drop_postal_code"`
}

// DefaultReportConfig returns the configuration used when no file is given.
func DefaultReportConfig() *ReportConfig {
	cfg := &ReportConfig{}
	applyReportConfigDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadReportConfig loads the report configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the ReportConfig struct with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func LoadReportConfig(configPath string) (*ReportConfig, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg ReportConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyReportConfigDefaults(&cfg)

	if err := validateReportConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyReportConfigDefaults sets default values for any unset options.
func applyReportConfigDefaults(cfg *ReportConfig) {
	if cfg.DefaultOutput == "" {
		cfg.DefaultOutput = DefaultOutputFile
	}
	if cfg.Sort == "" {
		cfg.Sort = SortInput
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validateReportConfig validates enumerated settings.
func validateReportConfig(cfg *ReportConfig) error {
	switch cfg.Sort {
	case SortInput, SortEndDateDesc:
	default:
		return fmt.Errorf("unknown sort order %q (want %q or %q)", cfg.Sort, SortInput, SortEndDateDesc)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	return nil
}
