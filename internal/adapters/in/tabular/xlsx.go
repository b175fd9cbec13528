package tabular

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"staffing/internal/core/application/ingestion"

	"github.com/xuri/excelize/v2"
)

type cellKind int

const (
	textCell cellKind = iota
	dateCell
	clockCell
)

// columnKinds maps the columns that may hold spreadsheet dates or times.
var columnKinds = map[string]cellKind{
	ingestion.ColumnDate:        dateCell,
	ingestion.ColumnPeriodStart: dateCell,
	ingestion.ColumnPeriodEnd:   dateCell,
	ingestion.ColumnStartTime:   clockCell,
	ingestion.ColumnEndTime:     clockCell,
}

// readXLSX reads the first sheet of the workbook. Cells are read raw; date
// and time cells in schedule columns are rendered as YYYY-MM-DD and
// HH:MM:SS instead of their display format.
func readXLSX(r io.Reader) ([]record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("open xlsx: workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	date1904 := false
	if props, propsErr := f.GetWorkbookProps(); propsErr == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	kinds := make([]cellKind, len(rows[0]))
	for c, name := range rows[0] {
		kinds[c] = columnKinds[strings.ToLower(strings.TrimSpace(name))]
	}

	records := make([]record, 0, len(rows))
	for i, cells := range rows {
		if i > 0 {
			for c, value := range cells {
				if c >= len(kinds) || kinds[c] == textCell || value == "" {
					continue
				}
				cells[c] = renderSerial(f, sheet, c+1, i+1, value, kinds[c], date1904)
			}
		}
		records = append(records, record{line: i + 1, cells: cells})
	}
	return records, nil
}

// renderSerial converts a date-formatted numeric cell. Anything else is
// returned unchanged for the normalizers to handle.
func renderSerial(f *excelize.File, sheet string, col, row int, value string, kind cellKind, date1904 bool) string {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil || !hasDateFormat(f, sheet, cell) {
		return value
	}

	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return value
	}
	if kind == clockCell {
		return t.Format(time.TimeOnly)
	}
	return t.Format(time.DateOnly)
}

func hasDateFormat(f *excelize.File, sheet, cell string) bool {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateLayout(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat reports the built-in number formats that display
// dates or times, including the East Asian ones.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}

// isDateLayout looks for date or time tokens outside quoted literals and
// bracketed sections such as colors or locales.
func isDateLayout(layout string) bool {
	var (
		quoted  bool
		bracket bool
	)
	for _, r := range strings.ToLower(layout) {
		switch {
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracket = true
		case r == ']':
			bracket = false
		case bracket:
		case strings.ContainsRune("ymdhs", r):
			return true
		}
	}
	return false
}
