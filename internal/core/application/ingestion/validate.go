package ingestion

import (
	"fmt"
	"strconv"
	"time"

	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/kernel"
)

const instantLayout = "2006-01-02 15:04:05"

// Mode selects the batch write a row is validated for.
type Mode int

const (
	// Create treats every row as new; an id column is ignored.
	Create Mode = iota
	// Update keys rows by their id column; rows without one are new.
	Update
)

func (m Mode) String() string {
	if m == Update {
		return "update"
	}
	return "create"
}

// ValidatedRow is a row that passed every check, with resolved references
// and computed instants for both schedule representations.
type ValidatedRow struct {
	Line int
	// Existing is true when the row named the id of a job to overwrite.
	Existing bool
	Params   job.Params
}

// Validator checks normalized rows against resolved references.
type Validator struct {
	Mode     Mode
	Location *time.Location
	Refs     References
	// NewID issues identifiers for new rows. Defaults to kernel.NewUUID.
	NewID func() kernel.UUID
}

// Validate collects every field error of n. A row with at least one error
// yields a *RowValidationError.
func (v Validator) Validate(n NormalizedRow) (ValidatedRow, error) {
	var fields []FieldError
	fail := func(field, format string, args ...any) {
		fields = append(fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	p := job.Params{
		Title:           n.Title,
		Address:         n.Address,
		Description:     n.Description,
		IsFlexible:      n.IsFlexible,
		AutoSetSchedule: n.AutoSetSchedule,
		RewardAmount:    n.RewardAmount,
		RewardTaxMode:   n.RewardTaxMode,
		BillingAmount:   n.BillingAmount,
		BillingTaxMode:  n.BillingTaxMode,
	}
	row := ValidatedRow{Line: n.Line}

	if v.Mode == Update && n.ID != "" {
		id, err := kernel.UUIDFromString(n.ID)
		if err != nil {
			fail(ColumnID, "%q is not a valid identifier", n.ID)
		}
		p.ID = id
		row.Existing = true
	} else {
		p.ID = v.newID()
	}

	switch clientID, ok := v.Refs.Clients[n.ClientName]; {
	case n.ClientName == "":
		fail(ColumnClientName, "is required")
	case !ok:
		fail(ColumnClientName, "client %q is not registered", n.ClientName)
	default:
		p.ClientID = &clientID
	}

	if templateID, ok := v.Refs.Templates[n.TemplateName]; ok && n.TemplateName != "" {
		p.TemplateID = &templateID
	}

	if n.Title == "" {
		fail(ColumnTitle, "is required")
	}
	if n.Address == "" {
		fail(ColumnAddressText, "is required")
	}

	p.MaxWorkers = 1
	if n.MaxWorkers != "" {
		maxWorkers, err := strconv.Atoi(n.MaxWorkers)
		switch {
		case err != nil:
			fail(ColumnMaxWorkers, "%q is not a whole number", n.MaxWorkers)
		case maxWorkers < 1:
			fail(ColumnMaxWorkers, "must be at least 1, got %d", maxWorkers)
		default:
			p.MaxWorkers = maxWorkers
		}
	}

	p.Status = job.Open
	if n.Status != "" {
		status, err := job.ParseStatus(n.Status)
		if err != nil {
			fail(ColumnStatus, "%q is not a job status", n.Status)
		}
		p.Status = status
	}

	fields = append(fields, v.schedule(n, &p)...)

	if len(fields) > 0 {
		return ValidatedRow{}, &RowValidationError{Line: n.Line, Title: n.Title, Fields: fields}
	}
	row.Params = p
	return row, nil
}

// schedule computes the authoritative window and its shadow copy.
//
// Fixed rows run on one date; an end time earlier than the start time ends
// on the following day. The shadow period spans that date. Flexible rows
// run from period_start at start_time to period_end at end_time; the shadow
// fixed window mirrors the period.
func (v Validator) schedule(n NormalizedRow, p *job.Params) []FieldError {
	var fields []FieldError
	loc := v.location()

	if !n.IsFlexible {
		if n.Date == "" {
			return []FieldError{{Field: ColumnDate, Message: "is required for a fixed schedule"}}
		}
		day, err := time.ParseInLocation(time.DateOnly, n.Date, loc)
		if err != nil {
			return []FieldError{{Field: ColumnDate, Message: fmt.Sprintf("%q is not a valid date", n.Date)}}
		}
		start, err := compose(n.Date, n.StartTime, loc)
		if err != nil {
			fields = append(fields, FieldError{Field: ColumnStartTime, Message: fmt.Sprintf("%q is not a valid time", n.StartTime)})
		}
		end, err := compose(n.Date, n.EndTime, loc)
		if err != nil {
			fields = append(fields, FieldError{Field: ColumnEndTime, Message: fmt.Sprintf("%q is not a valid time", n.EndTime)})
		}
		if len(fields) > 0 {
			return fields
		}
		if end.Before(start) {
			end = end.AddDate(0, 0, 1)
		}
		p.StartTime, p.EndTime = start, end
		p.WorkPeriodStart, p.WorkPeriodEnd = day, day
		return nil
	}

	if n.PeriodStart == "" {
		return []FieldError{{Field: ColumnPeriodStart, Message: "is required for a flexible schedule"}}
	}
	periodStart, err := compose(n.PeriodStart, n.StartTime, loc)
	if err != nil {
		fields = append(fields, FieldError{Field: ColumnPeriodStart, Message: fmt.Sprintf("%q %q is not a valid instant", n.PeriodStart, n.StartTime)})
	}
	periodEnd, err := compose(n.PeriodEnd, n.EndTime, loc)
	if err != nil {
		fields = append(fields, FieldError{Field: ColumnPeriodEnd, Message: fmt.Sprintf("%q %q is not a valid instant", n.PeriodEnd, n.EndTime)})
	}
	if len(fields) > 0 {
		return fields
	}
	if periodEnd.Before(periodStart) {
		return []FieldError{{Field: ColumnPeriodEnd, Message: "precedes period_start"}}
	}
	p.WorkPeriodStart, p.WorkPeriodEnd = periodStart, periodEnd
	p.StartTime, p.EndTime = periodStart, periodEnd
	return nil
}

func (v Validator) location() *time.Location {
	if v.Location == nil {
		return time.UTC
	}
	return v.Location
}

func (v Validator) newID() kernel.UUID {
	if v.NewID == nil {
		return kernel.NewUUID()
	}
	return v.NewID()
}

func compose(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(instantLayout, date+" "+clock, loc)
}
