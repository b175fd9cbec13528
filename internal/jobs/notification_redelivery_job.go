package jobs

import (
	"context"
	"log/slog"

	"staffing/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRedeliverySchedule runs the redelivery every minute.
const DefaultRedeliverySchedule = "0 * * * * *"

type redeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.RedeliverNotificationsCommand) (commands.RedeliveryReport, error)
}

// NotificationRedeliveryJob retries pushes parked in the outbox.
type NotificationRedeliveryJob struct {
	handler  redeliveryHandler
	command  commands.RedeliverNotificationsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationRedeliveryJob takes a six-field cron expression (with seconds).
func NewNotificationRedeliveryJob(
	handler redeliveryHandler,
	command commands.RedeliverNotificationsCommand,
	schedule string,
	logger *slog.Logger,
) *NotificationRedeliveryJob {
	if schedule == "" {
		schedule = DefaultRedeliverySchedule
	}
	return &NotificationRedeliveryJob{
		handler:  handler,
		command:  command,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "notification_redelivery_job"),
	}
}

// Start registers the job and starts the scheduler.
func (j *NotificationRedeliveryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification redelivery job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs one redelivery pass.
func (j *NotificationRedeliveryJob) RunOnce(ctx context.Context) {
	report, err := j.handler.Handle(ctx, j.command)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification redelivery failed", "error", err)
		return
	}
	if report.Delivered > 0 || report.Failed > 0 {
		j.logger.InfoContext(ctx, "Notification redelivery finished",
			"delivered", report.Delivered, "failed", report.Failed)
	}
}

// Stop waits for a running pass to finish.
func (j *NotificationRedeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification redelivery job stopped")
}
