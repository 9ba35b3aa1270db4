package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// DeleteAlertCommandHandler deletes alerts after an ownership check.
type DeleteAlertCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteAlertCommandHandler creates a handler for DeleteAlertCommand.
func NewDeleteAlertCommandHandler(uowFactory UoWFactory) DeleteAlertCommandHandler {
	return DeleteAlertCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the alert if the acting party may.
func (h DeleteAlertCommandHandler) Handle(ctx context.Context, cmd DeleteAlertCommand) error {
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

	found, err := uow.AlertRepository().Get(ctx, cmd.AlertID())
	if err != nil {
		return err
	}
	if !found.CanBeDeletedBy(cmd.ActingParty()) {
		return errs.NewUnauthorizedError(
			cmd.ActingParty().Role().String(), "delete alert "+cmd.AlertID().String())
	}

	if err := uow.AlertRepository().Delete(ctx, cmd.AlertID()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
