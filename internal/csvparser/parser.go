// =============================================================================
// Work History Formatter - CSV Parser Module
// =============================================================================
//
// This module is responsible for reading the work history CSV file. The file
// is read whole, split into physical lines, and each line is split into
// fields independently.
//
// FEATURES:
//   - Double-quoted fields may contain commas
//   - Doubled quotes ("") inside a quoted field decode to a single quote
//   - Field whitespace is preserved exactly as written
//   - Windows (\r\n) line endings are accepted
//   - Blank lines are skipped
//
// LIMITATIONS:
//   - A quoted field cannot span multiple lines; every record is one line.
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/work-history-formatter/internal/types"
)

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents the parsed CSV file.
type CSVData struct {
	// Header contains the fields of the first line. Its content is not
	// validated; it is only required to be present.
	Header []string

	// Rows contains the non-blank data lines, in file order.
	Rows []types.Row

	// SourceFile is the path to the source CSV file.
	SourceFile string

	// RowCount is the number of data rows (excluding the header).
	RowCount int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed data.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - A pointer to the CSVData struct containing the parsed rows.
//   - An error if the file cannot be opened or read.
//
// Lines that cannot be split are still returned, with Row.ParseErr set, so
// the caller decides whether to skip them or abort.
func Parse(filePath string) (*CSVData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := ParseReader(file)
	if err != nil {
		return nil, err
	}
	data.SourceFile = filePath

	return data, nil
}

// ParseReader parses CSV content from r. The first line is the header.
func ParseReader(r io.Reader) (*CSVData, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	lines := strings.Split(string(content), "\n")

	csvData := &CSVData{
		Rows: make([]types.Row, 0, len(lines)),
	}

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		// Line 0 is the header.
		if i == 0 {
			// A header that fails to split is still a header.
			csvData.Header, _ = SplitLine(line)
			continue
		}

		if isBlankLine(line) {
			continue
		}

		fields, err := SplitLine(line)
		csvData.Rows = append(csvData.Rows, types.Row{
			LineNumber: i + 1,
			Fields:     fields,
			ParseErr:   err,
		})
	}

	csvData.RowCount = len(csvData.Rows)

	return csvData, nil
}

// SplitLine splits a single CSV line into its fields.
//
// EXAMPLES:
//   `a,b,c`                   -> ["a", "b", "c"]
//   `"123 Main St, Apt 4",x`  -> ["123 Main St, Apt 4", "x"]
//   `a,b,`                    -> ["a", "b", ""]
//   ``                        -> []
//
// RETURNS:
//   - The fields in order, with surrounding quotes removed.
//   - An error if the line is not valid CSV.
func SplitLine(line string) ([]string, error) {
	if line == "" {
		return []string{}, nil
	}

	reader := csv.NewReader(strings.NewReader(line))
	configureReader(reader)

	fields, err := reader.Read()
	if err == io.EOF {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to split line: %w", err)
	}

	return fields, nil
}

// configureReader configures the CSV reader for single-line splitting.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Field count is checked downstream so the row can be reported with
	// its line number.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	// Whitespace is significant.
	reader.TrimLeadingSpace = false
}

// isBlankLine checks if a line contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
