package tabular_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"staffing/internal/adapters/in/tabular"
	"staffing/internal/core/application/ingestion"
	"staffing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFormatFromFilename(t *testing.T) {
	f, err := tabular.FormatFromFilename("jobs.CSV")
	require.NoError(t, err)
	assert.Equal(t, tabular.CSV, f)

	f, err = tabular.FormatFromFilename("/tmp/May jobs.xlsx")
	require.NoError(t, err)
	assert.Equal(t, tabular.XLSX, f)

	_, err = tabular.FormatFromFilename("jobs.xls")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRead_CSV(t *testing.T) {
	input := "\xEF\xBB\xBFTitle,client_name,date,start_time,end_time,unknown\n" +
		"Morning shift,Acme,2025/5/1,9:00,12:00,x\n" +
		",,,,,\n" +
		"\"Evening, late\",Acme,2025/5/1,18:00\n"

	rows, err := tabular.Read(strings.NewReader(input), tabular.CSV)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Morning shift", rows[0].Title)
	assert.Equal(t, "Acme", rows[0].ClientName)
	assert.Equal(t, "9:00", rows[0].StartTime)
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "Evening, late", rows[1].Title)
	assert.Empty(t, rows[1].EndTime)
}

func TestRead_CSVLineNumbersCountBlankLines(t *testing.T) {
	input := "title,client_name\n" +
		"\n" +
		"Day shift,Acme\n" +
		"\n" +
		"\n" +
		"\"Night\nshift\",Acme\n" +
		"Late shift,Acme\n"

	rows, err := tabular.Read(strings.NewReader(input), tabular.CSV)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 3, rows[0].Line)
	assert.Equal(t, 6, rows[1].Line)
	assert.Equal(t, "Night\nshift", rows[1].Title)
	assert.Equal(t, 8, rows[2].Line)
}

func TestRead_CSVHeaderOnly(t *testing.T) {
	_, err := tabular.Read(strings.NewReader("title,client_name\n"), tabular.CSV)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRead_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]string{
		{"title", "client_name", "is_flexible", "period_start", "period_end", "max_workers"},
		{"Inventory", "Acme", "はい", "2025/5/1", "2025/5/7", "3"},
	}
	for r, row := range cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := tabular.Read(&buf, tabular.XLSX)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Inventory", rows[0].Title)
	assert.Equal(t, "はい", rows[0].IsFlexible)
	assert.Equal(t, "2025/5/7", rows[0].PeriodEnd)
	assert.Equal(t, "3", rows[0].MaxWorkers)
}

func TestRead_XLSXDateAndTimeCells(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"title", "client_name", "date", "start_time", "end_time", "period_end", "max_workers"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{
		"Inventory", "Acme",
		time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		0.375, 0.75,
		"2025/5/7", 3,
	}))
	clock, err := f.NewStyle(&excelize.Style{NumFmt: 20})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "D4", "E4", clock))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := tabular.Read(&buf, tabular.XLSX)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Line)
	assert.Equal(t, "2025-05-01", rows[0].Date)
	assert.Equal(t, "09:00:00", rows[0].StartTime)
	assert.Equal(t, "18:00:00", rows[0].EndTime)
	assert.Equal(t, "2025/5/7", rows[0].PeriodEnd)
	assert.Equal(t, "3", rows[0].MaxWorkers)

	norm := ingestion.Normalize(rows[0])
	assert.Equal(t, "2025-05-01", norm.Date)
	assert.Equal(t, "09:00:00", norm.StartTime)
}

func TestRead_XLSXCorrupt(t *testing.T) {
	_, err := tabular.Read(strings.NewReader("not a workbook"), tabular.XLSX)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open xlsx")
}
