package commands

import (
	"context"
	"log/slog"

	"staffing/internal/core/application/notification"
	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/services"
	"staffing/internal/core/ports"
)

// AssignApplicationsCommandHandler selects many applicants on a best-effort
// basis: everything is read once, then every application is written in its
// own transaction so one failure never stops its siblings.
type AssignApplicationsCommandHandler struct {
	uowFactory AssignmentUoWFactory
	dispatcher NotificationDispatcher
	policy     services.AssignmentPolicy
	logger     *slog.Logger
}

// NewAssignApplicationsCommandHandler returns a handler that assigns a batch of applications in one transaction.
func NewAssignApplicationsCommandHandler(
	uowFactory AssignmentUoWFactory,
	dispatcher NotificationDispatcher,
	logger *slog.Logger,
) AssignApplicationsCommandHandler {
	return AssignApplicationsCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAssignmentPolicy(),
		logger:     logger.With("component", "assign_applications_handler"),
	}
}

type assignmentSnapshot struct {
	applications map[kernel.UUID]*jobapplication.Application
	jobs         map[kernel.UUID]*job.Job
	workers      map[kernel.UUID]ports.Worker
}

// Handle returns an error only when the initial read fails. Missing
// applications or jobs and rejected writes are counted as Failed.
func (h AssignApplicationsCommandHandler) Handle(
	ctx context.Context,
	cmd AssignApplicationsCommand,
) (AssignmentBatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentBatchResult{}, err
	}

	snap, err := h.load(ctx, cmd.ApplicationIDs())
	if err != nil {
		return AssignmentBatchResult{}, err
	}

	var result AssignmentBatchResult
	for _, id := range cmd.ApplicationIDs() {
		app, ok := snap.applications[id]
		if !ok {
			h.logger.WarnContext(ctx, "Application not found", "application_id", id.String())
			result.Failed++
			continue
		}
		j, ok := snap.jobs[app.JobID()]
		if !ok {
			h.logger.WarnContext(ctx, "Job of application not found",
				"application_id", id.String(), "job_id", app.JobID().String())
			result.Failed++
			continue
		}

		if err = h.assignOne(ctx, app, j); err != nil {
			h.logger.ErrorContext(ctx, "Assignment failed", "application_id", id.String(), "error", err)
			result.Failed++
			continue
		}

		result.Success++
		if task, ok := notification.NewSelectionTask(j, app, snap.workers[app.WorkerID()]); ok {
			result.Notifications = append(result.Notifications, task)
		}
	}

	result.record(opMany)
	h.dispatcher.Dispatch(ctx, result.Notifications)
	return result, nil
}

func (h AssignApplicationsCommandHandler) load(ctx context.Context, ids []kernel.UUID) (assignmentSnapshot, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return assignmentSnapshot{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	apps, err := uow.ApplicationRepository().GetMany(ctx, ids)
	if err != nil {
		return assignmentSnapshot{}, err
	}

	snap := assignmentSnapshot{
		applications: make(map[kernel.UUID]*jobapplication.Application, len(apps)),
		jobs:         make(map[kernel.UUID]*job.Job),
		workers:      make(map[kernel.UUID]ports.Worker),
	}
	jobIDs := make([]kernel.UUID, 0, len(apps))
	workerIDs := make([]kernel.UUID, 0, len(apps))
	for _, app := range apps {
		snap.applications[app.ID()] = app
		jobIDs = append(jobIDs, app.JobID())
		workerIDs = append(workerIDs, app.WorkerID())
	}
	if len(apps) == 0 {
		return snap, nil
	}

	jobs, err := uow.JobRepository().GetMany(ctx, jobIDs)
	if err != nil {
		return assignmentSnapshot{}, err
	}
	for _, j := range jobs {
		snap.jobs[j.ID()] = j
	}

	workers, err := uow.WorkerRepository().GetMany(ctx, workerIDs)
	if err != nil {
		return assignmentSnapshot{}, err
	}
	for _, w := range workers {
		snap.workers[w.ID] = w
	}

	return snap, nil
}

func (h AssignApplicationsCommandHandler) assignOne(ctx context.Context, app *jobapplication.Application, j *job.Job) error {
	if err := app.Apply(h.policy.DecideOutcome(j)); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ApplicationRepository().Update(ctx, app); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
