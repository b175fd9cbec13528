package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"staffing/internal/core/application/notification"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/services"
	"staffing/internal/pkg/errs"
	"staffing/internal/telemetry"
)

// AssignApplicationResult is the state an application was left in.
type AssignApplicationResult struct {
	ApplicationID  kernel.UUID
	Status         jobapplication.Status
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
}

// AssignApplicationCommandHandler applies one administrative decision and,
// after the write is committed, announces a selection to the worker.
type AssignApplicationCommandHandler struct {
	uowFactory AssignmentUoWFactory
	dispatcher NotificationDispatcher
	policy     services.AssignmentPolicy
	logger     *slog.Logger
}

// NewAssignApplicationCommandHandler returns a handler that moves one application to a new status.
func NewAssignApplicationCommandHandler(
	uowFactory AssignmentUoWFactory,
	dispatcher NotificationDispatcher,
	logger *slog.Logger,
) AssignApplicationCommandHandler {
	return AssignApplicationCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAssignmentPolicy(),
		logger:     logger.With("component", "assign_application_handler"),
	}
}

// Handle loads the application with its job and worker, applies the
// decision, persists it and commits. Assigned goes through the assignment
// policy; Rejected and Cancelled change the status only.
//
// Returns errs.ErrObjectNotFound for a missing application or job. A
// notification failure never fails the call.
func (h AssignApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd AssignApplicationCommand,
) (AssignApplicationResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignApplicationResult{}, err
	}

	res, task, err := h.apply(ctx, cmd)
	if err != nil {
		telemetry.AssignmentResults.WithLabelValues(opSingle, telemetry.ResultFailed).Inc()
		return AssignApplicationResult{}, err
	}
	telemetry.AssignmentResults.WithLabelValues(opSingle, telemetry.ResultSuccess).Inc()

	if task != nil {
		h.dispatcher.Dispatch(ctx, []notification.Task{*task})
	}
	return res, nil
}

func (h AssignApplicationCommandHandler) apply(
	ctx context.Context,
	cmd AssignApplicationCommand,
) (AssignApplicationResult, *notification.Task, error) {
	var none AssignApplicationResult

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return none, nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	app, err := uow.ApplicationRepository().Get(ctx, cmd.ApplicationID())
	if err != nil {
		return none, nil, err
	}

	j, err := uow.JobRepository().Get(ctx, app.JobID())
	if err != nil {
		return none, nil, err
	}

	worker, err := uow.WorkerRepository().Get(ctx, app.WorkerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		h.logger.WarnContext(ctx, "Worker of application not found, notification skipped",
			"application_id", app.ID().String(), "worker_id", app.WorkerID().String())
	case err != nil:
		return none, nil, err
	}

	switch cmd.Status() {
	case jobapplication.Assigned:
		err = app.Apply(h.policy.DecideOutcome(j))
	case jobapplication.Rejected:
		err = app.Reject()
	case jobapplication.Cancelled:
		err = app.Cancel()
	}
	if err != nil {
		return none, nil, err
	}

	if err = uow.ApplicationRepository().Update(ctx, app); err != nil {
		return none, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return none, nil, err
	}

	h.logger.InfoContext(ctx, "Application decided",
		"application_id", app.ID().String(), "status", app.Status().String())

	res := AssignApplicationResult{
		ApplicationID:  app.ID(),
		Status:         app.Status(),
		ScheduledStart: app.ScheduledStart(),
		ScheduledEnd:   app.ScheduledEnd(),
	}
	if task, ok := notification.NewSelectionTask(j, app, worker); ok {
		return res, &task, nil
	}
	return res, nil, nil
}
