package commands

import (
	"context"
	"log/slog"

	"staffing/internal/core/application/notification"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/services"
	"staffing/internal/core/ports"
)

// AssignWorkerToJobsCommandHandler places one worker on many jobs, each job
// in its own transaction. Jobs with different scheduling policies can be
// mixed in one call; each job's own flags decide its outcome.
//
// Re-running the same command is safe: pairs that are already Assigned or
// Confirmed are counted as AlreadyExists and left untouched.
type AssignWorkerToJobsCommandHandler struct {
	uowFactory AssignmentUoWFactory
	dispatcher NotificationDispatcher
	policy     services.AssignmentPolicy
	logger     *slog.Logger
}

// NewAssignWorkerToJobsCommandHandler returns a handler that assigns one worker to several jobs.
func NewAssignWorkerToJobsCommandHandler(
	uowFactory AssignmentUoWFactory,
	dispatcher NotificationDispatcher,
	logger *slog.Logger,
) AssignWorkerToJobsCommandHandler {
	return AssignWorkerToJobsCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAssignmentPolicy(),
		logger:     logger.With("component", "assign_worker_to_jobs_handler"),
	}
}

type pairOutcome int

const (
	pairWritten pairOutcome = iota
	pairSkipped
)

// Handle returns an error only when the worker cannot be read. Every
// per-job problem is counted as Failed.
func (h AssignWorkerToJobsCommandHandler) Handle(
	ctx context.Context,
	cmd AssignWorkerToJobsCommand,
) (AssignmentBatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentBatchResult{}, err
	}

	worker, err := h.loadWorker(ctx, cmd.WorkerID())
	if err != nil {
		return AssignmentBatchResult{}, err
	}

	var result AssignmentBatchResult
	for _, jobID := range cmd.JobIDs() {
		task, outcome, err := h.assignOne(ctx, worker, jobID)
		switch {
		case err != nil:
			h.logger.ErrorContext(ctx, "Assignment failed",
				"worker_id", worker.ID.String(), "job_id", jobID.String(), "error", err)
			result.Failed++
		case outcome == pairSkipped:
			result.AlreadyExists++
		default:
			result.Success++
			if task != nil {
				result.Notifications = append(result.Notifications, *task)
			}
		}
	}

	result.record(opWorkerJobs)
	h.dispatcher.Dispatch(ctx, result.Notifications)
	return result, nil
}

func (h AssignWorkerToJobsCommandHandler) loadWorker(ctx context.Context, id kernel.UUID) (ports.Worker, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Worker{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.WorkerRepository().Get(ctx, id)
}

func (h AssignWorkerToJobsCommandHandler) assignOne(
	ctx context.Context,
	worker ports.Worker,
	jobID kernel.UUID,
) (*notification.Task, pairOutcome, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, pairWritten, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	j, err := uow.JobRepository().Get(ctx, jobID)
	if err != nil {
		return nil, pairWritten, err
	}

	repo := uow.ApplicationRepository()
	existing, err := repo.FindByJobAndWorker(ctx, jobID, worker.ID)
	if err != nil {
		return nil, pairWritten, err
	}

	app := existing
	outcome := h.policy.DecideOutcome(j)
	switch h.policy.Classify(existing) {
	case services.Skip:
		return nil, pairSkipped, nil
	case services.Reactivate:
		err = existing.Apply(outcome)
	case services.Create:
		app, err = jobapplication.NewApplication(kernel.NewUUID(), jobID, worker.ID, outcome)
	}
	if err != nil {
		return nil, pairWritten, err
	}

	if err = repo.Save(ctx, app); err != nil {
		return nil, pairWritten, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, pairWritten, err
	}

	if task, ok := notification.NewSelectionTask(j, app, worker); ok {
		return &task, pairWritten, nil
	}
	return nil, pairWritten, nil
}
