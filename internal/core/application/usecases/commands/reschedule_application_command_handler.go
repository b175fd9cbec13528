package commands

import (
	"context"
)

// RescheduleApplicationCommandHandler writes a new committed window. It has
// no side effects beyond the write: no status change, no notification.
type RescheduleApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

// NewRescheduleApplicationCommandHandler returns a handler that moves an application to a new window.
func NewRescheduleApplicationCommandHandler(uowFactory ApplicationUoWFactory) RescheduleApplicationCommandHandler {
	return RescheduleApplicationCommandHandler{uowFactory: uowFactory}
}

// Handle loads the application, applies the new window and saves it.
func (h RescheduleApplicationCommandHandler) Handle(ctx context.Context, cmd RescheduleApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ApplicationRepository()
	app, err := repo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	if err = app.Reschedule(cmd.Start(), cmd.End()); err != nil {
		return err
	}

	if err = repo.Update(ctx, app); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
