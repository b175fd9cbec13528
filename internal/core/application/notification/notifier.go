package notification

import (
	"context"
	"errors"

	"staffing/internal/core/ports"
)

// ErrEmptyAddress is reported for tasks without a recipient.
var ErrEmptyAddress = errors.New("notification address is empty")

// Result is the outcome of one delivery attempt.
type Result struct {
	Success bool
	Err     error
}

// Notifier performs exactly one delivery attempt and never returns an error
// to the caller; the outcome is reported in Result.
type Notifier struct {
	sender ports.NotificationSender
}

// NewNotifier wraps sender.
func NewNotifier(sender ports.NotificationSender) Notifier {
	return Notifier{sender: sender}
}

// Notify sends message to address once.
func (n Notifier) Notify(ctx context.Context, address, message string) Result {
	if address == "" {
		return Result{Err: ErrEmptyAddress}
	}
	if err := n.sender.Send(ctx, address, message); err != nil {
		return Result{Err: err}
	}
	return Result{Success: true}
}
