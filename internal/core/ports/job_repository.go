// Package ports defines the contracts between the staffing core and its
// infrastructure: repositories, the notification channel and its settings.
package ports

import (
	"context"

	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Get retrieves a job by identifier.
	// Returns errs.ErrObjectNotFound when no such job exists.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetMany retrieves the jobs among ids that exist, in one round trip.
	// Missing ids are silently absent from the result.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*job.Job, error)

	// AddAll inserts every job in a single statement.
	AddAll(ctx context.Context, jobs []*job.Job) error

	// UpsertAll inserts or overwrites every job by identifier in a single statement.
	UpsertAll(ctx context.Context, jobs []*job.Job) error
}
