// Package tabular turns uploaded CSV and XLSX files into ingestion rows.
// The first row of a file is the header; column names are matched
// case-insensitively and unknown columns are ignored. Row Line numbers are
// the physical line or sheet row, so the first data row is line 2.
package tabular

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"staffing/internal/core/application/ingestion"
	"staffing/internal/pkg/errs"
)

// Format is a supported file layout.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// FormatFromFilename picks the format from the file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("file format", fmt.Errorf("%q is neither .csv nor .xlsx", name))
	}
}

// record is one parsed row with the file line it came from.
type record struct {
	line  int
	cells []string
}

// Read parses r in the given format. Blank rows are skipped but still
// counted, so Line matches what a spreadsheet shows.
func Read(r io.Reader, format Format) ([]ingestion.RawRow, error) {
	var (
		records []record
		err     error
	)
	switch format {
	case CSV:
		records, err = readCSV(r)
	case XLSX:
		records, err = readXLSX(r)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("file format", fmt.Errorf("%q is not supported", format))
	}
	if err != nil {
		return nil, err
	}
	return toRows(records)
}

func toRows(records []record) ([]ingestion.RawRow, error) {
	if len(records) == 0 {
		return nil, errs.NewValueIsRequiredError("header row")
	}

	header := records[0].cells
	rows := make([]ingestion.RawRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec.cells) {
			continue
		}
		rows = append(rows, ingestion.RawRowFromRecord(rec.line, header, rec.cells))
	}

	if len(rows) == 0 {
		return nil, errs.NewValueIsRequiredError("rows")
	}
	return rows, nil
}

func isBlank(cells []string) bool {
	for _, v := range cells {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
