package commands

import (
	"staffing/internal/core/application/notification"
	"staffing/internal/telemetry"
)

// Operation labels for assignment metrics.
const (
	opSingle     = "single"
	opMany       = "many"
	opWorkerJobs = "worker_jobs"
)

// AssignmentBatchResult reports a best-effort fan-out. The counters are the
// only channel through which individual item failures reach the caller.
type AssignmentBatchResult struct {
	Success       int `json:"success"`
	Failed        int `json:"failed"`
	AlreadyExists int `json:"alreadyExists"`

	// Notifications lists the selection pushes queued by successful items.
	Notifications []notification.Task `json:"-"`
}

func (r *AssignmentBatchResult) record(operation string) {
	telemetry.AssignmentResults.WithLabelValues(operation, telemetry.ResultSuccess).Add(float64(r.Success))
	telemetry.AssignmentResults.WithLabelValues(operation, telemetry.ResultFailed).Add(float64(r.Failed))
	telemetry.AssignmentResults.WithLabelValues(operation, telemetry.ResultAlreadyExists).Add(float64(r.AlreadyExists))
}
