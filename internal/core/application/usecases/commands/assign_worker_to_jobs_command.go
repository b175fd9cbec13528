package commands

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrAssignWorkerToJobsCommandIsNotConstructed = errors.New(
	"AssignWorkerToJobsCommand must be created via NewAssignWorkerToJobsCommand constructor",
)

// AssignWorkerToJobsCommand places one worker on many jobs.
//
// Example:
//
//	cmd, err := NewAssignWorkerToJobsCommand(workerID, []kernel.UUID{jobA, jobB})
//	res, err := handler.Handle(ctx, cmd)
//	fmt.Printf("%d assigned, %d already there, %d failed\n", res.Success, res.AlreadyExists, res.Failed)
type AssignWorkerToJobsCommand struct {
	workerID kernel.UUID
	jobIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkerToJobsCommand requires a worker and at least one job.
// Repeated job identifiers are kept once.
func NewAssignWorkerToJobsCommand(workerID kernel.UUID, jobIDs []kernel.UUID) (AssignWorkerToJobsCommand, error) {
	if err := workerID.Validate(); err != nil {
		return AssignWorkerToJobsCommand{}, err
	}
	ids, err := distinctIDs("jobIds", jobIDs)
	if err != nil {
		return AssignWorkerToJobsCommand{}, err
	}
	return AssignWorkerToJobsCommand{workerID: workerID, jobIDs: ids, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerToJobsCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerToJobsCommandIsNotConstructed)
}

// WorkerID returns the worker being assigned.
func (c AssignWorkerToJobsCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// JobIDs returns the target jobs, in request order.
func (c AssignWorkerToJobsCommand) JobIDs() []kernel.UUID {
	return c.jobIDs
}
