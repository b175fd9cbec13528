package commands

import (
	"errors"
	"fmt"
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrRescheduleApplicationCommandIsNotConstructed = errors.New(
	"RescheduleApplicationCommand must be created via NewRescheduleApplicationCommand constructor",
)

// RescheduleApplicationCommand overrides the committed work window of an
// application without touching its status.
type RescheduleApplicationCommand struct {
	applicationID kernel.UUID
	start         time.Time
	end           time.Time

	guard guard.ConstructorGuard
}

// NewRescheduleApplicationCommand requires both bounds and end >= start.
func NewRescheduleApplicationCommand(applicationID kernel.UUID, start, end time.Time) (RescheduleApplicationCommand, error) {
	if err := applicationID.Validate(); err != nil {
		return RescheduleApplicationCommand{}, err
	}
	if start.IsZero() || end.IsZero() {
		return RescheduleApplicationCommand{}, errs.NewValueIsRequiredError("scheduled start and end")
	}
	if end.Before(start) {
		return RescheduleApplicationCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"scheduled window is invalid",
			fmt.Errorf("end %s precedes start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}

	return RescheduleApplicationCommand{
		applicationID: applicationID,
		start:         start,
		end:           end,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleApplicationCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleApplicationCommandIsNotConstructed)
}

// ApplicationID returns the application to reschedule.
func (c RescheduleApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// Start returns the new start time.
func (c RescheduleApplicationCommand) Start() time.Time {
	return c.start
}

// End returns the new end time.
func (c RescheduleApplicationCommand) End() time.Time {
	return c.end
}
