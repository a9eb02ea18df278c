// =============================================================================
// Work History Formatter - Row Validation
// =============================================================================
//
// This module decides whether a data row can be turned into a work history
// block. It checks that:
//   - The line could be split into fields
//   - The row has exactly eight fields
//   - Start and end dates contain at least two '/' separators
//
// Dates are not checked against a calendar; "13/45/2020" passes.
//
// A failing row produces a ValidationError carrying the input line number.
// Whether that error skips the row or aborts the run is the caller's policy.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/work-history-formatter/internal/types"
)

// Rule names reported in ValidationError.Rule.
const (
	RuleSplit      = "split"
	RuleFieldCount = "field_count"
	RuleStartDate  = "start_date"
	RuleEndDate    = "end_date"
	RuleTransform  = "transform"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a malformed data row.
type ValidationError struct {
	// LineNumber is the 1-based line in the input file.
	LineNumber int

	// Rule is the validation rule that was violated.
	Rule string

	// Field is the column name, if the error concerns a single field.
	Field string

	// Value is the offending value, if any.
	Value string

	// Message is a human-readable error message.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("malformed row at line %d: %s", e.LineNumber, e.Message)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field '%s', value: '%s')", e.Field, e.Value)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// ValidateRow checks a single row. It returns nil when the row is usable.
func ValidateRow(row types.Row) *ValidationError {
	if row.ParseErr != nil {
		return &ValidationError{
			LineNumber: row.LineNumber,
			Rule:       RuleSplit,
			Message:    "line could not be split into fields",
			Cause:      row.ParseErr,
		}
	}

	if len(row.Fields) != types.FieldCount {
		return &ValidationError{
			LineNumber: row.LineNumber,
			Rule:       RuleFieldCount,
			Message:    fmt.Sprintf("expected %d fields, got %d", types.FieldCount, len(row.Fields)),
		}
	}

	if err := validateDate(row, types.ColStartDate, "Start Date", RuleStartDate); err != nil {
		return err
	}
	if err := validateDate(row, types.ColEndDate, "End Date", RuleEndDate); err != nil {
		return err
	}

	return nil
}

// validateDate requires the MM/DD/YYYY separator shape.
func validateDate(row types.Row, col int, name, rule string) *ValidationError {
	value := row.Fields[col]
	if HasDateSeparators(value) {
		return nil
	}
	return &ValidationError{
		LineNumber: row.LineNumber,
		Rule:       rule,
		Field:      name,
		Value:      value,
		Message:    "date must be in MM/DD/YYYY format",
	}
}

// HasDateSeparators reports whether value has at least two '/' separators.
func HasDateSeparators(value string) bool {
	return strings.Count(value, "/") >= 2
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats validation errors for display.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No malformed rows."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Skipped %d malformed row(s):\n", len(errors)))

	for _, err := range errors {
		builder.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}

	return builder.String()
}
