package commands_test

import (
	"testing"
	"time"

	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var (
	jobStart = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	jobEnd   = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newJob(t *testing.T, autoSet, flexible bool) *job.Job {
	t.Helper()
	j, err := job.NewJob(job.Params{
		ID:              kernel.NewUUID(),
		Title:           "Event staff",
		Address:         "Chiyoda, Tokyo",
		IsFlexible:      flexible,
		AutoSetSchedule: autoSet,
		StartTime:       jobStart,
		EndTime:         jobEnd,
		WorkPeriodStart: jobStart,
		WorkPeriodEnd:   jobEnd.AddDate(0, 0, 7),
		MaxWorkers:      1,
		Status:          job.Open,
		RewardTaxMode:   kernel.TaxExcluded,
		BillingTaxMode:  kernel.TaxExcluded,
	})
	require.NoError(t, err)
	return j
}

func restoreApplication(
	t *testing.T,
	jobID, workerID kernel.UUID,
	status jobapplication.Status,
) *jobapplication.Application {
	t.Helper()
	var start, end *time.Time
	if status == jobapplication.Confirmed {
		start, end = &jobStart, &jobEnd
	}
	app, err := jobapplication.RestoreApplication(kernel.NewUUID(), jobID, workerID, status, start, end, nil)
	require.NoError(t, err)
	return app
}

func newWorker(address string) ports.Worker {
	w := ports.Worker{ID: kernel.NewUUID(), Name: "Sato"}
	if address != "" {
		w.PushAddress = &address
	}
	return w
}
