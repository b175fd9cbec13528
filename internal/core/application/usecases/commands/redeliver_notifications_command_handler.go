package commands

import (
	"context"
	"log/slog"

	"staffing/internal/core/application/notification"
	"staffing/internal/core/ports"
	"staffing/internal/telemetry"
)

// RedeliveryReport summarizes one redelivery run.
type RedeliveryReport struct {
	Delivered int
	Failed    int
}

// RedeliverNotificationsCommandHandler drains the notification outbox. Each
// entry gets exactly one attempt per run.
type RedeliverNotificationsCommandHandler struct {
	outbox   ports.NotificationOutbox
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewRedeliverNotificationsCommandHandler returns a handler that retries undelivered notifications.
func NewRedeliverNotificationsCommandHandler(
	outbox ports.NotificationOutbox,
	sender ports.NotificationSender,
	logger *slog.Logger,
) RedeliverNotificationsCommandHandler {
	return RedeliverNotificationsCommandHandler{
		outbox:   outbox,
		notifier: notification.NewNotifier(sender),
		logger:   logger.With("component", "redeliver_notifications_handler"),
	}
}

// Handle tries each pending notification once. A store error stops the run
// and returns the counts so far.
func (h RedeliverNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd RedeliverNotificationsCommand,
) (RedeliveryReport, error) {
	if err := cmd.Validate(); err != nil {
		return RedeliveryReport{}, err
	}

	pending, err := h.outbox.Pending(ctx, cmd.MaxAttempts(), cmd.BatchSize())
	if err != nil {
		return RedeliveryReport{}, err
	}
	telemetry.OutboxDepthGauge.Set(float64(len(pending)))

	var report RedeliveryReport
	for _, n := range pending {
		res := h.notifier.Notify(ctx, n.Address, n.Text)
		if res.Success {
			if err = h.outbox.MarkDelivered(ctx, n.ID); err != nil {
				return report, err
			}
			telemetry.NotificationResults.WithLabelValues(telemetry.NotificationRedelivered).Inc()
			report.Delivered++
			continue
		}

		h.logger.WarnContext(ctx, "Redelivery failed",
			"notification_id", n.ID.String(), "attempts", n.Attempts+1, "error", res.Err)
		if err = h.outbox.MarkFailed(ctx, n.ID, res.Err); err != nil {
			return report, err
		}
		report.Failed++
	}
	return report, nil
}
