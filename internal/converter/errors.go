// =============================================================================
// Work History Formatter - Converter Errors
// =============================================================================
//
// Error types returned by the converter:
//   - ReadError:       the input file is missing or cannot be read
//   - WriteError:      the report cannot be written
//   - DateFormatError: a date lacks the MM/DD/YYYY separators
//
// Malformed rows are reported as *validation.ValidationError.
//
// =============================================================================

package converter

import "fmt"

// ReadError represents a failure to find, open or read the input file.
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error: %s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("read error: %s: %s", e.Message, e.Path)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure to create or write the output file.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("write error: %s: %s", e.Message, e.Path)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// DateFormatError is returned when a date lacks the MM/DD/YYYY separators.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected MM/DD/YYYY", e.Value)
}
