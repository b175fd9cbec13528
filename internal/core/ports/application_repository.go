package ports

import (
	"context"

	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for job applications.
//
// The store holds at most one row per (job, worker) pair; Save relies on
// that uniqueness to make concurrent creation of the same pair converge on
// a single row.
type ApplicationRepository interface {
	// Get retrieves an application by identifier.
	// Returns errs.ErrObjectNotFound when no such application exists.
	Get(ctx context.Context, id kernel.UUID) (*jobapplication.Application, error)

	// GetMany retrieves the applications among ids that exist, in one round trip.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*jobapplication.Application, error)

	// FindByJobAndWorker returns the application of the pair, or nil when
	// the worker has none for the job.
	FindByJobAndWorker(ctx context.Context, jobID, workerID kernel.UUID) (*jobapplication.Application, error)

	// Save inserts the application, or overwrites status and schedule of the
	// row already holding the same (job, worker) pair.
	Save(ctx context.Context, app *jobapplication.Application) error

	// Update persists status and schedule of an existing application.
	// Returns errs.ErrObjectNotFound when the row no longer exists.
	Update(ctx context.Context, app *jobapplication.Application) error
}
