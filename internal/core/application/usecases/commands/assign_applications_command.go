package commands

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrAssignApplicationsCommandIsNotConstructed = errors.New(
	"AssignApplicationsCommand must be created via NewAssignApplicationsCommand constructor",
)

// AssignApplicationsCommand selects many applicants at once. Each
// application is decided against its own job.
type AssignApplicationsCommand struct {
	applicationIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignApplicationsCommand requires at least one identifier. Repeated
// identifiers are kept once, in first-seen order.
func NewAssignApplicationsCommand(applicationIDs []kernel.UUID) (AssignApplicationsCommand, error) {
	ids, err := distinctIDs("applicationIds", applicationIDs)
	if err != nil {
		return AssignApplicationsCommand{}, err
	}
	return AssignApplicationsCommand{applicationIDs: ids, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignApplicationsCommand) Validate() error {
	return c.guard.Validate(ErrAssignApplicationsCommandIsNotConstructed)
}

// ApplicationIDs returns the applications to assign, in request order.
func (c AssignApplicationsCommand) ApplicationIDs() []kernel.UUID {
	return c.applicationIDs
}

func distinctIDs(param string, ids []kernel.UUID) ([]kernel.UUID, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError(param)
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
