package ingestion

import (
	"fmt"
	"strings"

	"staffing/internal/pkg/errs"
)

// FieldError describes one offending column of a row.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RowValidationError aborts a batch. It names the row by line and, when
// present, by title, and lists every field that failed.
type RowValidationError struct {
	Line   int          `json:"line"`
	Title  string       `json:"title,omitempty"`
	Fields []FieldError `json:"fields"`
}

func (e *RowValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	row := fmt.Sprintf("row %d", e.Line)
	if e.Title != "" {
		row = fmt.Sprintf("row %d (%q)", e.Line, e.Title)
	}
	return fmt.Sprintf("%s: %s: %s", errs.ErrValueIsInvalid, row, strings.Join(parts, "; "))
}

func (e *RowValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
