// =============================================================================
// Work History Formatter - XLSX Input Reader
// =============================================================================
//
// This module reads work history from an Excel workbook instead of a CSV
// file. The first sheet is used and is laid out exactly like the CSV input:
//
//   | A       | B         | C          | D          | E       | F               | G           | H      |
//   |---------|-----------|------------|------------|---------|-----------------|-------------|--------|
//   | Company | Job Title | Start Date | End Date   | Address | Supervisor Name | Description | Reason |
//   | Acme    | Engineer  | 01/15/2020 | 06/30/2022 | ...     | Jane Doe        | Built ...   | ...    |
//
// Cell values are read as displayed text, so date cells must be formatted
// as MM/DD/YYYY in the workbook.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/work-history-formatter/internal/csvparser"
	"github.com/ginjaninja78/work-history-formatter/internal/types"
	"github.com/xuri/excelize/v2"
)

// IsWorkbook reports whether path names a workbook this reader handles.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Parse reads the first sheet of an XLSX workbook.
//
// PARAMETERS:
//   - filePath: The path to the workbook.
//
// RETURNS:
//   - The rows in the same shape the CSV parser produces. Row.LineNumber is
//     the 1-based spreadsheet row.
//   - An error if the workbook cannot be opened or read.
//
// NOTE: excelize drops trailing empty cells, so each data row is padded
// back to the header width. Rows shorter than the header because the sheet
// itself has fewer columns are left as-is and fail validation downstream.
func Parse(filePath string) (*csvparser.CSVData, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheetName, err)
	}

	data := &csvparser.CSVData{
		SourceFile: filePath,
		Rows:       make([]types.Row, 0, len(rows)),
	}

	if len(rows) == 0 {
		return data, nil
	}

	data.Header = rows[0]
	width := len(data.Header)

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}

		data.Rows = append(data.Rows, types.Row{
			LineNumber: i + 1,
			Fields:     padRow(row, width),
		})
	}

	data.RowCount = len(data.Rows)

	return data, nil
}

// padRow extends row with empty cells up to width.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
