package commands

import (
	"errors"

	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrAssignApplicationCommandIsNotConstructed = errors.New(
	"AssignApplicationCommand must be created via NewAssignApplicationCommand constructor",
)

// AssignApplicationCommand is an administrative decision on one application:
// select the worker (Assigned), turn them down (Rejected) or withdraw the
// selection (Cancelled).
//
// Example:
//
//	cmd, err := NewAssignApplicationCommand(applicationID, jobapplication.Assigned)
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
//	// res.Status is Confirmed when the job auto-sets its schedule
type AssignApplicationCommand struct {
	applicationID kernel.UUID
	status        jobapplication.Status

	guard guard.ConstructorGuard
}

// NewAssignApplicationCommand validates the identifier and the target status.
func NewAssignApplicationCommand(applicationID kernel.UUID, status jobapplication.Status) (AssignApplicationCommand, error) {
	if err := errors.Join(
		applicationID.Validate(),
		jobapplication.ValidateAdminTarget(status),
	); err != nil {
		return AssignApplicationCommand{}, err
	}

	return AssignApplicationCommand{
		applicationID: applicationID,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignApplicationCommand) Validate() error {
	return c.guard.Validate(ErrAssignApplicationCommandIsNotConstructed)
}

// ApplicationID returns the application to update.
func (c AssignApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// Status returns the requested status.
func (c AssignApplicationCommand) Status() jobapplication.Status {
	return c.status
}
