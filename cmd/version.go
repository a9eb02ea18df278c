// =============================================================================
// Work History Formatter - Version Information
// =============================================================================
//
// Version details are printed by the --version flag on the root command.
// A flag is used rather than a 'version' subcommand so that an input file
// named "version" is still accepted as a positional argument.
//
// OUTPUT:
//   Work History Formatter
//   Version:    1.0.0
//   Build Date: 2026-01-01
//   Go Version: go1.24.11
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================
// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ginjaninja78/work-history-formatter/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// versionTemplate returns the cobra template used for --version.
func versionTemplate() string {
	return fmt.Sprintf("Work History Formatter\nVersion:    %s\nBuild Date: %s\nGo Version: %s\n",
		Version, BuildDate, runtime.Version())
}
