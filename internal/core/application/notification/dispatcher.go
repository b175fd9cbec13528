package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/ports"
	"staffing/internal/telemetry"
)

// Report summarizes one Dispatch call.
type Report struct {
	Sent     int
	Failed   int
	Disabled bool
}

// Dispatcher delivers a batch of tasks concurrently. Failures are logged,
// counted and parked in the outbox for asynchronous redelivery; they never
// reach the caller as errors.
type Dispatcher struct {
	notifier Notifier
	settings ports.NotificationSettings
	outbox   ports.NotificationOutbox
	location *time.Location
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher. outbox may be nil, in which case
// failed deliveries are only logged.
func NewDispatcher(
	sender ports.NotificationSender,
	settings ports.NotificationSettings,
	outbox ports.NotificationOutbox,
	location *time.Location,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		notifier: NewNotifier(sender),
		settings: settings,
		outbox:   outbox,
		location: location,
		logger:   logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch reads the enable flag once, then sends every task in its own
// goroutine and waits for all of them.
func (d *Dispatcher) Dispatch(ctx context.Context, tasks []Task) Report {
	if len(tasks) == 0 {
		return Report{}
	}

	enabled, err := d.settings.SelectionNotificationsEnabled(ctx)
	if err != nil {
		d.logger.WarnContext(ctx, "Cannot read notification settings, skipping batch", "error", err, "tasks", len(tasks))
		enabled = false
	}
	if !enabled {
		telemetry.NotificationResults.WithLabelValues(telemetry.NotificationDisabled).Add(float64(len(tasks)))
		return Report{Disabled: true}
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		report Report
	)
	for _, task := range tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()

			text := Render(t, d.location)
			res := d.notifier.Notify(ctx, t.Address, text)
			if res.Success {
				telemetry.NotificationResults.WithLabelValues(telemetry.NotificationSent).Inc()
			} else {
				telemetry.NotificationResults.WithLabelValues(telemetry.NotificationFailed).Inc()
				d.logger.ErrorContext(ctx, "Selection notification failed",
					"worker_id", t.WorkerID.String(), "job_title", t.JobTitle, "error", res.Err)
				d.park(ctx, t, text, res.Err)
			}

			mu.Lock()
			defer mu.Unlock()
			if res.Success {
				report.Sent++
			} else {
				report.Failed++
			}
		}(task)
	}
	wg.Wait()

	return report
}

func (d *Dispatcher) park(ctx context.Context, t Task, text string, cause error) {
	if d.outbox == nil || t.Address == "" {
		return
	}
	pending := ports.PendingNotification{
		ID:        kernel.NewUUID(),
		WorkerID:  t.WorkerID,
		Address:   t.Address,
		Text:      text,
		Attempts:  1,
		CreatedAt: time.Now().UTC(),
	}
	if cause != nil {
		pending.LastError = cause.Error()
	}
	if err := d.outbox.Record(context.WithoutCancel(ctx), pending); err != nil {
		d.logger.ErrorContext(ctx, "Cannot park failed notification", "worker_id", t.WorkerID.String(), "error", err)
	}
}
