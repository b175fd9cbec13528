package ports

import (
	"context"

	"staffing/internal/core/domain/model/kernel"
)

// Worker is the read model of a worker account used by assignment. Workers
// are owned elsewhere; this core never writes them.
type Worker struct {
	ID   kernel.UUID
	Name string
	// PushAddress is nil when the worker has not registered a device.
	PushAddress *string
}

// HasPushAddress reports whether the worker can be notified.
func (w Worker) HasPushAddress() bool {
	return w.PushAddress != nil && *w.PushAddress != ""
}

// WorkerRepository reads worker accounts.
type WorkerRepository interface {
	// Get returns errs.ErrObjectNotFound when no such worker exists.
	Get(ctx context.Context, id kernel.UUID) (Worker, error)
	GetMany(ctx context.Context, ids []kernel.UUID) ([]Worker, error)
}
