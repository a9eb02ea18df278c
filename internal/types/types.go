// =============================================================================
// Work History Formatter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser / xlsxparser (Row)
//   - validation (Row)
//   - converter (WorkHistoryRecord, Block)
//   - textwriter (Block)
//
// =============================================================================

package types

import "fmt"

// FieldCount is the number of columns every data row must carry.
const FieldCount = 8

// Column positions within a data row.
const (
	ColCompany = iota
	ColJobTitle
	ColStartDate
	ColEndDate
	ColAddress
	ColSupervisorName
	ColDescription
	ColReason
)

// =============================================================================
// INPUT TYPES
// =============================================================================

// Row is one data line read from the input file.
type Row struct {
	// LineNumber is the 1-based physical line in the input file.
	// Used for warnings and error reporting.
	LineNumber int

	// Fields contains the split field values, in column order.
	Fields []string

	// ParseErr is set when the line could not be split into fields.
	// The driver treats such rows as malformed.
	ParseErr error
}

// WorkHistoryRecord represents a single employment period, one per data row.
type WorkHistoryRecord struct {
	Company        string
	JobTitle       string
	StartDate      string // MM/DD/YYYY
	EndDate        string // MM/DD/YYYY
	Address        string
	SupervisorName string
	Description    string
	Reason         string
}

// RecordFromFields maps an 8-field row onto a WorkHistoryRecord.
// The caller must have validated the field count.
func RecordFromFields(fields []string) WorkHistoryRecord {
	return WorkHistoryRecord{
		Company:        fields[ColCompany],
		JobTitle:       fields[ColJobTitle],
		StartDate:      fields[ColStartDate],
		EndDate:        fields[ColEndDate],
		Address:        fields[ColAddress],
		SupervisorName: fields[ColSupervisorName],
		Description:    fields[ColDescription],
		Reason:         fields[ColReason],
	}
}

// =============================================================================
// OUTPUT TYPES
// =============================================================================

// Block is the rendered form of one record.
type Block struct {
	// Index is the 1-based sequence number shown in the heading.
	Index int

	Company          string
	Position         string
	StartMonthYear   string
	EndMonthYear     string
	Location         string
	Responsibilities string
}

// String renders the block as text lines, without a trailing newline.
func (b Block) String() string {
	return fmt.Sprintf("Work History %d\n"+
		"Company: %s\n"+
		"Position: %s\n"+
		"Start Date: %s\n"+
		"End Date: %s\n"+
		"Location: %s\n"+
		"Responsibilities: %s",
		b.Index,
		b.Company,
		b.Position,
		b.StartMonthYear,
		b.EndMonthYear,
		b.Location,
		b.Responsibilities,
	)
}
