package converter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/work-history-formatter/internal/config"
	"github.com/ginjaninja78/work-history-formatter/internal/types"
	"github.com/ginjaninja78/work-history-formatter/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const header = "Company,Job Title,Start Date,End Date,Address,Supervisor Name,Description,Reason\n"

const acmeLine = `Acme Inc,Engineer,01/15/2020,06/30/2022,"123 Main St, Springfield, IL",Jane,Built things,Moved` + "\n"

const acmeBlock = "Work History 1\n" +
	"Company: Acme Inc\n" +
	"Position: Engineer\n" +
	"Start Date: 01/2020\n" +
	"End Date: 06/2022\n" +
	"Location: Springfield, IL\n" +
	"Responsibilities: Built things\n"

// writeInput creates an input file in a temp dir and returns its path and the
// output path beside it.
func writeInput(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "work_history.csv")
	require.NoError(t, os.WriteFile(in, []byte(content), 0644))
	return in, filepath.Join(dir, "report.txt")
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestRun_SingleRecord(t *testing.T) {
	in, out := writeInput(t, header+acmeLine)

	result := New(in, out, nil, nil).Run()
	require.NoError(t, result.Error)

	assert.True(t, result.Success)
	assert.Equal(t, out, result.OutputFile)
	assert.Equal(t, 1, result.Stats.RowsRead)
	assert.Equal(t, 1, result.Stats.BlocksWritten)
	assert.Equal(t, acmeBlock, readOutput(t, out))
}

func TestRun_HeaderOnly(t *testing.T) {
	in, out := writeInput(t, header)

	result := New(in, out, nil, nil).Run()
	require.NoError(t, result.Error)

	assert.Equal(t, "", readOutput(t, out))
	assert.Equal(t, 0, result.Stats.BlocksWritten)
}

func TestRun_EmptyInput(t *testing.T) {
	in, out := writeInput(t, "")

	result := New(in, out, nil, nil).Run()
	require.NoError(t, result.Error)
	assert.Equal(t, "", readOutput(t, out))
}

func TestRun_NumbersBlocksInOrder(t *testing.T) {
	content := header +
		"Acme,Engineer,01/15/2020,06/30/2022,\"Springfield, IL\",Jane,Built,Moved\n" +
		"Globex,Manager,07/01/2022,12/31/2023,\"Cypress Creek, OR\",Hank,Managed,Left\n" +
		"Initech,Analyst,01/01/2024,03/01/2024,Remote,Bill,Analyzed,Contract\n"
	in, out := writeInput(t, content)

	result := New(in, out, nil, nil).Run()
	require.NoError(t, result.Error)

	report := readOutput(t, out)
	blocks := strings.Split(strings.TrimSuffix(report, "\n"), "\n\n")
	require.Len(t, blocks, 3)

	assert.True(t, strings.HasPrefix(blocks[0], "Work History 1\nCompany: Acme\n"))
	assert.True(t, strings.HasPrefix(blocks[1], "Work History 2\nCompany: Globex\n"))
	assert.True(t, strings.HasPrefix(blocks[2], "Work History 3\nCompany: Initech\n"))
	assert.Contains(t, blocks[2], "Location: Remote\n")
}

func TestRun_SkipsMalformedRows(t *testing.T) {
	content := header +
		"Short,Row,01/01/2020\n" +
		acmeLine +
		"Bad,Date,2020,06/30/2022,\"Springfield, IL\",Jane,Built,Moved\n"
	in, out := writeInput(t, content)

	var logs bytes.Buffer
	result := New(in, out, nil, NewLogger(&logs, "info")).Run()
	require.NoError(t, result.Error)

	assert.Equal(t, acmeBlock, readOutput(t, out))
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, 2, result.Skipped[0].LineNumber)
	assert.Equal(t, validation.RuleFieldCount, result.Skipped[0].Rule)
	assert.Equal(t, 4, result.Skipped[1].LineNumber)
	assert.Equal(t, validation.RuleStartDate, result.Skipped[1].Rule)
	assert.Equal(t, 2, result.Stats.RowsSkipped)

	assert.Contains(t, logs.String(), "Skipping line 2")
	assert.Contains(t, logs.String(), "Skipping line 4")
}

func TestRun_StrictAbortsWithoutOutput(t *testing.T) {
	content := header + acmeLine + "Short,Row\n"
	in, out := writeInput(t, content)

	cfg := config.DefaultReportConfig()
	cfg.Strict = true

	result := New(in, out, cfg, nil).Run()
	require.Error(t, result.Error)
	assert.False(t, result.Success)

	var verr *validation.ValidationError
	require.ErrorAs(t, result.Error, &verr)
	assert.Equal(t, 3, verr.LineNumber)

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.txt")

	result := New(filepath.Join(dir, "missing.csv"), out, nil, nil).Run()

	var readErr *ReadError
	require.ErrorAs(t, result.Error, &readErr)
	assert.Equal(t, "input file not found", readErr.Message)
	assert.True(t, errors.Is(result.Error, os.ErrNotExist))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "no output should be created")
}

func TestRun_InputIsDirectory(t *testing.T) {
	dir := t.TempDir()

	result := New(dir, filepath.Join(dir, "report.txt"), nil, nil).Run()

	var readErr *ReadError
	require.ErrorAs(t, result.Error, &readErr)
	assert.Equal(t, "input path is a directory", readErr.Message)
}

func TestRun_UnwritableOutput(t *testing.T) {
	in, _ := writeInput(t, header+acmeLine)
	out := filepath.Join(t.TempDir(), "missing", "report.txt")

	result := New(in, out, nil, nil).Run()

	var writeErr *WriteError
	require.ErrorAs(t, result.Error, &writeErr)
	assert.Equal(t, out, writeErr.Path)
	assert.False(t, result.Success)
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	in, out := writeInput(t, header+acmeLine)
	require.NoError(t, os.WriteFile(out, []byte("stale report\n\n\nwith more text"), 0644))

	result := New(in, out, nil, nil).Run()
	require.NoError(t, result.Error)
	assert.Equal(t, acmeBlock, readOutput(t, out))
}

func TestRun_SortEndDateDesc(t *testing.T) {
	content := header +
		"Old,Engineer,01/01/2015,12/31/2016,\"Springfield, IL\",A,Old work,R\n" +
		"New,Engineer,01/01/2020,06/30/2022,\"Springfield, IL\",B,New work,R\n" +
		"Mid,Engineer,01/01/2017,11/30/2019,\"Springfield, IL\",C,Mid work,R\n"
	in, out := writeInput(t, content)

	cfg := config.DefaultReportConfig()
	cfg.Sort = config.SortEndDateDesc

	result := New(in, out, cfg, nil).Run()
	require.NoError(t, result.Error)

	report := readOutput(t, out)
	assert.Contains(t, report, "Work History 1\nCompany: New\n")
	assert.Contains(t, report, "Work History 2\nCompany: Mid\n")
	assert.Contains(t, report, "Work History 3\nCompany: Old\n")
}

func TestRun_DropPostalCode(t *testing.T) {
	content := header + "Acme,Engineer,01/15/2020,06/30/2022,\"1 Elm, Springfield, IL 62704\",Jane,Built,Moved\n"
	in, out := writeInput(t, content)

	cfg := config.DefaultReportConfig()
	cfg.Location.DropPostalCode = true

	result := New(in, out, cfg, nil).Run()
	require.NoError(t, result.Error)
	assert.Contains(t, readOutput(t, out), "Location: Springfield, IL\n")
}

func TestRun_AddressWithTrailingComma(t *testing.T) {
	content := header + "Acme Inc,Engineer,01/15/2020,06/30/2022,\"123 Main St, Springfield, IL,\",Jane,Built things,Moved\n"
	in, out := writeInput(t, content)

	result := New(in, out, nil, nil).Run()
	require.NoError(t, result.Error)
	assert.Equal(t, acmeBlock, readOutput(t, out))
}

func TestRun_Workbook(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "work_history.xlsx")
	out := filepath.Join(dir, "report.txt")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{
		"Company", "Job Title", "Start Date", "End Date", "Address", "Supervisor Name", "Description", "Reason",
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{
		"Acme Inc", "Engineer", "01/15/2020", "06/30/2022", "123 Main St, Springfield, IL", "Jane", "Built things", "Moved",
	}))
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	result := New(in, out, nil, nil).Run()
	require.NoError(t, result.Error)
	assert.Equal(t, acmeBlock, readOutput(t, out))
}

func TestNumber(t *testing.T) {
	blocks := []types.Block{{Index: 9}, {Index: 9}, {Index: 9}}
	Number(blocks)

	for i, b := range blocks {
		assert.Equal(t, i+1, b.Index)
	}
}

func TestSortByEndDateDesc_UndatedLast(t *testing.T) {
	blocks := []types.Block{
		{Company: "a", EndMonthYear: "xx/2020"},
		{Company: "b", EndMonthYear: "01/2019"},
		{Company: "c", EndMonthYear: "12/2019"},
		{Company: "d", EndMonthYear: "??"},
	}

	SortByEndDateDesc(blocks)

	var order []string
	for _, b := range blocks {
		order = append(order, b.Company)
	}
	assert.Equal(t, []string{"c", "b", "a", "d"}, order)
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("hidden %d", 1)
	logger.Warn("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "chatty")

	logger.Debug("debug line")
	logger.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}
