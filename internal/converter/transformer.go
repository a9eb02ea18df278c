// =============================================================================
// Work History Formatter - Transformation Engine
// =============================================================================
//
// This module turns one WorkHistoryRecord into one output Block.
//
// TRANSFORMATIONS:
//   - Dates:    "MM/DD/YYYY"                     -> "MM/YYYY"
//   - Location: "123 Main St, Springfield, IL"   -> "Springfield, IL"
//   - Company, Job Title and Description are copied unchanged.
//   - Supervisor Name and Reason are not part of the output.
//
// All functions here are pure: the same record and index always produce the
// same block.
//
// =============================================================================

package converter

import (
	"strings"

	"github.com/ginjaninja78/work-history-formatter/internal/types"
)

// =============================================================================
// TRANSFORMER
// =============================================================================

// LocationOptions controls how the Location line is derived.
type LocationOptions struct {
	// DropPostalCode keeps only the first word of the state segment.
	DropPostalCode bool
}

// Transformer converts records into blocks.
type Transformer struct {
	location LocationOptions
}

// NewTransformer creates a new Transformer with the given location options.
func NewTransformer(location LocationOptions) *Transformer {
	return &Transformer{
		location: location,
	}
}

var defaultTransformer = NewTransformer(LocationOptions{})

// Transform renders rec as block number index using default options.
func Transform(rec types.WorkHistoryRecord, index int) (types.Block, error) {
	return defaultTransformer.Transform(rec, index)
}

// Transform renders rec as block number index.
//
// RETURNS:
//   - The block, ready for Block.String().
//   - A *DateFormatError if either date lacks the MM/DD/YYYY separators.
func (t *Transformer) Transform(rec types.WorkHistoryRecord, index int) (types.Block, error) {
	start, err := ReformatDate(rec.StartDate)
	if err != nil {
		return types.Block{}, err
	}

	end, err := ReformatDate(rec.EndDate)
	if err != nil {
		return types.Block{}, err
	}

	location := ExtractLocation(rec.Address)
	if t.location.DropPostalCode {
		location = dropPostalCode(location)
	}

	return types.Block{
		Index:            index,
		Company:          rec.Company,
		Position:         rec.JobTitle,
		StartMonthYear:   start,
		EndMonthYear:     end,
		Location:         location,
		Responsibilities: rec.Description,
	}, nil
}

// =============================================================================
// DATE CONVERSION
// =============================================================================

// ReformatDate reduces "MM/DD/YYYY" to "MM/YYYY".
//
// The month is everything before the first '/', the year everything after
// the second '/'. No calendar validation is done:
//   "01/15/2020" -> "01/2020"
//   "1/5/2020"   -> "1/2020"
//   "13/45/2020" -> "13/2020"
func ReformatDate(date string) (string, error) {
	first := strings.IndexByte(date, '/')
	if first < 0 {
		return "", &DateFormatError{Value: date}
	}

	rest := date[first+1:]
	second := strings.IndexByte(rest, '/')
	if second < 0 {
		return "", &DateFormatError{Value: date}
	}

	return date[:first] + "/" + rest[second+1:], nil
}

// =============================================================================
// LOCATION EXTRACTION
// =============================================================================

// ExtractLocation derives "City, State" from a comma-separated address.
//
// The last two non-empty trimmed segments are used. With fewer than two,
// the trimmed address is returned:
//   "123 Main St, Springfield, IL"   -> "Springfield, IL"
//   "123 Main St, Springfield, IL,"  -> "Springfield, IL"
//   "Springfield"                    -> "Springfield"
//   "  Remote  "                     -> "Remote"
func ExtractLocation(address string) string {
	parts := strings.Split(address, ",")

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}

	if len(segments) < 2 {
		return strings.TrimSpace(address)
	}

	return segments[len(segments)-2] + ", " + segments[len(segments)-1]
}

// dropPostalCode trims "City, IL 62704" to "City, IL".
func dropPostalCode(location string) string {
	idx := strings.LastIndex(location, ", ")
	if idx < 0 {
		return location
	}

	state := strings.Fields(location[idx+2:])
	if len(state) == 0 {
		return location
	}

	return location[:idx] + ", " + state[0]
}
