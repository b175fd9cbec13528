package commands

import (
	"errors"

	"staffing/internal/core/application/ingestion"
	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var (
	ErrBulkCreateJobsCommandIsNotConstructed = errors.New(
		"BulkCreateJobsCommand must be created via NewBulkCreateJobsCommand constructor",
	)
	ErrBulkUpdateJobsCommandIsNotConstructed = errors.New(
		"BulkUpdateJobsCommand must be created via NewBulkUpdateJobsCommand constructor",
	)
)

// BulkCreateJobsCommand carries rows that all become new jobs.
type BulkCreateJobsCommand struct {
	rows []ingestion.RawRow

	guard guard.ConstructorGuard
}

// NewBulkCreateJobsCommand requires at least one row.
func NewBulkCreateJobsCommand(rows []ingestion.RawRow) (BulkCreateJobsCommand, error) {
	if len(rows) == 0 {
		return BulkCreateJobsCommand{}, errs.NewValueIsRequiredError("rows")
	}
	return BulkCreateJobsCommand{rows: rows, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkCreateJobsCommand) Validate() error {
	return c.guard.Validate(ErrBulkCreateJobsCommandIsNotConstructed)
}

// Rows returns the raw rows in upload order.
func (c BulkCreateJobsCommand) Rows() []ingestion.RawRow {
	return c.rows
}

// BulkUpdateJobsCommand carries rows keyed by their id column. Rows without
// an id are inserted as new jobs.
type BulkUpdateJobsCommand struct {
	rows []ingestion.RawRow

	guard guard.ConstructorGuard
}

// NewBulkUpdateJobsCommand requires at least one row.
func NewBulkUpdateJobsCommand(rows []ingestion.RawRow) (BulkUpdateJobsCommand, error) {
	if len(rows) == 0 {
		return BulkUpdateJobsCommand{}, errs.NewValueIsRequiredError("rows")
	}
	return BulkUpdateJobsCommand{rows: rows, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkUpdateJobsCommand) Validate() error {
	return c.guard.Validate(ErrBulkUpdateJobsCommandIsNotConstructed)
}

// Rows returns the raw rows in upload order.
func (c BulkUpdateJobsCommand) Rows() []ingestion.RawRow {
	return c.rows
}
