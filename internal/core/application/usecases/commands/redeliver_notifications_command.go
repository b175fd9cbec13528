package commands

import (
	"errors"
	"fmt"

	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrRedeliverNotificationsCommandIsNotConstructed = errors.New(
	"RedeliverNotificationsCommand must be created via NewRedeliverNotificationsCommand constructor",
)

// RedeliverNotificationsCommand retries parked pushes that have been
// attempted fewer than maxAttempts times, at most batchSize of them.
type RedeliverNotificationsCommand struct {
	maxAttempts int
	batchSize   int

	guard guard.ConstructorGuard
}

// NewRedeliverNotificationsCommand requires both limits to be positive.
func NewRedeliverNotificationsCommand(maxAttempts, batchSize int) (RedeliverNotificationsCommand, error) {
	if maxAttempts < 1 {
		return RedeliverNotificationsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"max attempts is invalid", fmt.Errorf("%d is not greater than 0", maxAttempts))
	}
	if batchSize < 1 {
		return RedeliverNotificationsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batch size is invalid", fmt.Errorf("%d is not greater than 0", batchSize))
	}
	return RedeliverNotificationsCommand{
		maxAttempts: maxAttempts,
		batchSize:   batchSize,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RedeliverNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRedeliverNotificationsCommandIsNotConstructed)
}

// MaxAttempts returns the attempt count after which a notification is left alone.
func (c RedeliverNotificationsCommand) MaxAttempts() int {
	return c.maxAttempts
}

// BatchSize returns how many pending notifications one run picks up.
func (c RedeliverNotificationsCommand) BatchSize() int {
	return c.batchSize
}
