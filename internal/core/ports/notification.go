package ports

import (
	"context"
	"time"

	"staffing/internal/core/domain/model/kernel"
)

// NotificationSender delivers a text to one push address.
type NotificationSender interface {
	Send(ctx context.Context, address, text string) error
}

// NotificationSettings exposes the global notification switch.
type NotificationSettings interface {
	// SelectionNotificationsEnabled reports whether workers are told about
	// being assigned. A missing setting reads as enabled.
	SelectionNotificationsEnabled(ctx context.Context) (bool, error)
}

// PendingNotification is a push that failed and waits for redelivery.
type PendingNotification struct {
	ID        kernel.UUID
	WorkerID  kernel.UUID
	Address   string
	Text      string
	Attempts  int
	LastError string
	CreatedAt time.Time
}

// NotificationOutbox keeps failed pushes for asynchronous redelivery.
type NotificationOutbox interface {
	Record(ctx context.Context, n PendingNotification) error
	// Pending returns at most limit entries with fewer than maxAttempts attempts, oldest first.
	Pending(ctx context.Context, maxAttempts, limit int) ([]PendingNotification, error)
	MarkDelivered(ctx context.Context, id kernel.UUID) error
	MarkFailed(ctx context.Context, id kernel.UUID, cause error) error
}
