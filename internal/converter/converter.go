// =============================================================================
// Work History Formatter - Converter Module
// =============================================================================
//
// This module contains the conversion pipeline for a single input file.
//
// CONVERSION PIPELINE:
//   1. Read the input file (CSV, or XLSX by extension)
//   2. Drop the header row
//   3. Validate each data row; skip or abort on malformed rows
//   4. Transform each valid row into a block
//   5. Order blocks (input order by default) and number them 1..K
//   6. Join blocks into the report document
//   7. Write the report to the output path
//
// The pipeline is synchronous and runs once per invocation.
//
// =============================================================================

package converter

import (
	"errors"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/work-history-formatter/internal/config"
	"github.com/ginjaninja78/work-history-formatter/internal/csvparser"
	"github.com/ginjaninja78/work-history-formatter/internal/textwriter"
	"github.com/ginjaninja78/work-history-formatter/internal/types"
	"github.com/ginjaninja78/work-history-formatter/internal/validation"
	"github.com/ginjaninja78/work-history-formatter/internal/xlsxparser"
	"github.com/ginjaninja78/work-history-formatter/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing the input file.
type Result struct {
	// FilePath is the path to the input file.
	FilePath string

	// OutputFile is the path the report was written to.
	// Empty if processing failed.
	OutputFile string

	// Success indicates whether the report was written.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Skipped lists the malformed rows that were left out of the report.
	Skipped []*validation.ValidationError

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsRead is the number of non-blank data rows in the input.
	RowsRead int

	// BlocksWritten is the number of blocks in the report.
	BlocksWritten int

	// RowsSkipped is the number of malformed rows left out.
	RowsSkipped int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts one work history file into a text report.
type Converter struct {
	inputPath   string
	outputPath  string
	cfg         *config.ReportConfig
	transformer *Transformer
	logger      Logger
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter instance.
//
// PARAMETERS:
//   - inputPath: The path to the input CSV or XLSX file.
//   - outputPath: The path of the report to write.
//   - cfg: The report configuration. Nil means config.DefaultReportConfig().
//   - logger: The logger. Nil discards log output.
func New(inputPath, outputPath string, cfg *config.ReportConfig, logger Logger) *Converter {
	if cfg == nil {
		cfg = config.DefaultReportConfig()
	}
	if logger == nil {
		logger = NewNopLogger()
	}

	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		cfg:        cfg,
		transformer: NewTransformer(LocationOptions{
			DropPostalCode: cfg.Location.DropPostalCode,
		}),
		logger: logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
//
// RETURNS:
//   - A Result describing the outcome. Result.Error is one of:
//       *ReadError                  input missing or unreadable
//       *validation.ValidationError malformed row in strict mode
//       *WriteError                 report could not be written
//
// Nothing is written to the output path unless every earlier step succeeds.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: c.inputPath,
	}

	c.logger.Debug("Processing file: %s", c.inputPath)

	// =========================================================================
	// STEP 1: READ INPUT
	// =========================================================================

	data, err := c.readInput()
	if err != nil {
		result.Error = err
		return result
	}

	result.Stats.RowsRead = data.RowCount
	c.logger.Debug("Read %d data row(s)", data.RowCount)

	// =========================================================================
	// STEP 2: VALIDATE AND TRANSFORM
	// =========================================================================

	blocks, skipped, err := c.buildBlocks(data.Rows)
	result.Skipped = skipped
	result.Stats.RowsSkipped = len(skipped)
	if err != nil {
		result.Error = err
		return result
	}

	// =========================================================================
	// STEP 3: ORDER AND NUMBER
	// =========================================================================

	if c.cfg.Sort == config.SortEndDateDesc {
		SortByEndDateDesc(blocks)
	}
	Number(blocks)

	// =========================================================================
	// STEP 4: GENERATE AND WRITE
	// =========================================================================

	document := textwriter.Generate(blocks)

	if err := utils.WriteFileAtomic(c.outputPath, document, 0644); err != nil {
		result.Error = &WriteError{
			Path:    c.outputPath,
			Message: "failed to write output file",
			Cause:   err,
		}
		return result
	}

	result.OutputFile = c.outputPath
	result.Stats.BlocksWritten = len(blocks)
	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	c.logger.Debug("Wrote %d block(s) to %s in %s", len(blocks), c.outputPath, result.Stats.ProcessingTime)

	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// readInput loads rows from the input file, choosing the reader by extension.
func (c *Converter) readInput() (*csvparser.CSVData, error) {
	if !utils.FileExists(c.inputPath) {
		return nil, c.missingInputError()
	}

	if size, err := utils.GetFileSize(c.inputPath); err == nil {
		c.logger.Debug("Input size: %d bytes", size)
	}

	var (
		data *csvparser.CSVData
		err  error
	)
	if xlsxparser.IsWorkbook(c.inputPath) {
		data, err = xlsxparser.Parse(c.inputPath)
	} else {
		data, err = csvparser.Parse(c.inputPath)
	}
	if err != nil {
		return nil, &ReadError{Path: c.inputPath, Message: "failed to read input file", Cause: err}
	}

	return data, nil
}

// missingInputError explains why the input path is not a readable file.
func (c *Converter) missingInputError() error {
	info, err := os.Stat(c.inputPath)
	switch {
	case err == nil && info.IsDir():
		return &ReadError{Path: c.inputPath, Message: "input path is a directory"}
	case errors.Is(err, os.ErrNotExist):
		return &ReadError{Path: c.inputPath, Message: "input file not found", Cause: err}
	default:
		return &ReadError{Path: c.inputPath, Message: "failed to access input file", Cause: err}
	}
}

// buildBlocks validates and transforms rows in order.
//
// Malformed rows are skipped with a warning, or returned as the error when
// the configuration is strict. Blocks come back unnumbered.
func (c *Converter) buildBlocks(rows []types.Row) ([]types.Block, []*validation.ValidationError, error) {
	blocks := make([]types.Block, 0, len(rows))
	var skipped []*validation.ValidationError

	for _, row := range rows {
		block, verr := c.buildBlock(row)
		if verr == nil {
			blocks = append(blocks, block)
			continue
		}

		if c.cfg.Strict {
			return nil, skipped, verr
		}

		c.logger.Warn("Skipping line %d (%s): %s", verr.LineNumber, verr.Rule, verr.Message)
		skipped = append(skipped, verr)
	}

	return blocks, skipped, nil
}

// buildBlock turns one row into a block or a validation error.
func (c *Converter) buildBlock(row types.Row) (types.Block, *validation.ValidationError) {
	if verr := validation.ValidateRow(row); verr != nil {
		return types.Block{}, verr
	}

	block, err := c.transformer.Transform(types.RecordFromFields(row.Fields), 0)
	if err != nil {
		// ValidateRow has already checked the date separators.
		return types.Block{}, &validation.ValidationError{
			LineNumber: row.LineNumber,
			Rule:       validation.RuleTransform,
			Message:    "record could not be transformed",
			Cause:      err,
		}
	}

	return block, nil
}

// Number assigns sequence numbers 1..K in slice order.
func Number(blocks []types.Block) {
	for i := range blocks {
		blocks[i].Index = i + 1
	}
}

// SortByEndDateDesc orders blocks by end month-year, most recent first.
// The sort is stable; blocks whose end date is not numeric MM/YYYY keep
// their relative order after all dated blocks.
func SortByEndDateDesc(blocks []types.Block) {
	sort.SliceStable(blocks, func(i, j int) bool {
		ki, oki := monthYearKey(blocks[i].EndMonthYear)
		kj, okj := monthYearKey(blocks[j].EndMonthYear)
		if oki != okj {
			return oki
		}
		return ki > kj
	})
}

// monthYearKey converts "MM/YYYY" to a sortable YYYYMM integer.
func monthYearKey(monthYear string) (int, bool) {
	month, year, found := strings.Cut(monthYear, "/")
	if !found {
		return 0, false
	}

	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return 0, false
	}

	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, false
	}

	return y*100 + m, true
}
