package jobapplication

import (
	"errors"
	"fmt"
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

var (
	// ErrApplicationIsNotConstructed is returned by Validate for values not built by a constructor.
	ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")
)

// Outcome is the status and scheduling commitment an assignment writes.
// It is produced by the assignment policy and applied by Application.Apply.
type Outcome struct {
	Status         Status
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
}

// Validate accepts Assigned with any schedule and Confirmed with both
// schedule fields set.
func (o Outcome) Validate() error {
	switch o.Status {
	case Assigned:
		return nil
	case Confirmed:
		return validateConfirmedSchedule(o.ScheduledStart, o.ScheduledEnd)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"outcome status is invalid",
			fmt.Errorf("%s is not an assignment outcome", o.Status.String()),
		)
	}
}

// Application binds one worker to one job and is the subject of the
// assignment state machine.
//
// Invariants:
//   - Confirmed implies both scheduled fields are set
//   - Completed applications are not changed by administrative actions
//   - the scheduled window is independent of the job's own schedule once written
type Application struct {
	id             kernel.UUID
	jobID          kernel.UUID
	workerID       kernel.UUID
	status         Status
	scheduledStart *time.Time
	scheduledEnd   *time.Time
	contractID     *kernel.UUID

	isConstructed bool
}

// NewApplication creates an application directly in the state described by
// outcome, as administrative bulk assignment does.
//
// Example:
//
//	outcome := policy.DecideOutcome(j)
//	app, err := jobapplication.NewApplication(kernel.NewUUID(), j.ID(), workerID, outcome)
func NewApplication(id, jobID, workerID kernel.UUID, outcome Outcome) (*Application, error) {
	a := &Application{isConstructed: true}

	if err := errors.Join(
		a.setIdentity(id, jobID, workerID),
		outcome.Validate(),
	); err != nil {
		return nil, err
	}

	a.write(outcome)
	return a, nil
}

// RestoreApplication rebuilds a persisted application.
func RestoreApplication(
	id, jobID, workerID kernel.UUID,
	status Status,
	scheduledStart, scheduledEnd *time.Time,
	contractID *kernel.UUID,
) (*Application, error) {
	a := &Application{isConstructed: true}

	if err := errors.Join(
		a.setIdentity(id, jobID, workerID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status == Confirmed {
		if err := validateConfirmedSchedule(scheduledStart, scheduledEnd); err != nil {
			return nil, err
		}
	}

	a.status = status
	a.scheduledStart = scheduledStart
	a.scheduledEnd = scheduledEnd
	a.contractID = contractID
	return a, nil
}

// Validate ensures the instance was built by NewApplication or RestoreApplication.
func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

// ID returns the application's identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

// JobID returns the job the worker applied to.
func (a *Application) JobID() kernel.UUID {
	return a.jobID
}

// WorkerID returns the applying worker.
func (a *Application) WorkerID() kernel.UUID {
	return a.workerID
}

// Status returns the current lifecycle state.
func (a *Application) Status() Status {
	return a.status
}

// ScheduledStart returns the committed start, nil when no schedule is set.
func (a *Application) ScheduledStart() *time.Time {
	return a.scheduledStart
}

// ScheduledEnd returns the committed end, nil when no schedule is set.
func (a *Application) ScheduledEnd() *time.Time {
	return a.scheduledEnd
}

// ContractID returns the linked signed contract, if any.
func (a *Application) ContractID() *kernel.UUID {
	return a.contractID
}

// Apply writes an assignment outcome onto this row. It serves first
// assignment, repeated assignment and re-activation of a Rejected or
// Cancelled application alike; the row keeps its identity.
//
// Returns an error when the application is Completed or the outcome is invalid.
func (a *Application) Apply(outcome Outcome) error {
	if err := a.status.ValidateAdminTransition(); err != nil {
		return err
	}
	if err := outcome.Validate(); err != nil {
		return err
	}

	a.write(outcome)
	return nil
}

// Reject marks the application Rejected. The schedule is left as is.
func (a *Application) Reject() error {
	return a.moveTo(Rejected)
}

// Cancel marks the application Cancelled. The schedule is left as is.
func (a *Application) Cancel() error {
	return a.moveTo(Cancelled)
}

// Reschedule overrides the committed window without touching the status.
// Both bounds are required and end may not precede start.
func (a *Application) Reschedule(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errs.NewValueIsRequiredError("scheduled start and end")
	}
	if end.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduled window is invalid",
			fmt.Errorf("end %s precedes start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}

	a.scheduledStart = &start
	a.scheduledEnd = &end
	return nil
}

func (a *Application) moveTo(target Status) error {
	if err := a.status.ValidateAdminTransition(); err != nil {
		return err
	}
	a.status = target
	return nil
}

func (a *Application) write(outcome Outcome) {
	a.status = outcome.Status
	a.scheduledStart = copyTime(outcome.ScheduledStart)
	a.scheduledEnd = copyTime(outcome.ScheduledEnd)
}

func (a *Application) setIdentity(id, jobID, workerID kernel.UUID) error {
	if err := errors.Join(id.Validate(), jobID.Validate(), workerID.Validate()); err != nil {
		return err
	}
	a.id = id
	a.jobID = jobID
	a.workerID = workerID
	return nil
}

func validateConfirmedSchedule(start, end *time.Time) error {
	if start == nil || end == nil {
		return errs.NewValueIsRequiredErrorWithCause(
			"scheduled start and end",
			errors.New("confirmed applications must carry a schedule"),
		)
	}
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
