package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/procurement"
)

// BookProcurementCommandHandler books pending procurements.
type BookProcurementCommandHandler struct {
	uowFactory UoWFactory
}

// NewBookProcurementCommandHandler creates a handler for BookProcurementCommand.
func NewBookProcurementCommandHandler(uowFactory UoWFactory) BookProcurementCommandHandler {
	return BookProcurementCommandHandler{uowFactory: uowFactory}
}

// Handle books the procurement, retrying on concurrent modification.
func (h BookProcurementCommandHandler) Handle(
	ctx context.Context, cmd BookProcurementCommand,
) (*procurement.Procurement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var booked *procurement.Procurement
	err := withConcurrencyRetry(ctx, func() error {
		var attemptErr error
		booked, attemptErr = h.handleOnce(ctx, cmd)
		return attemptErr
	})
	return booked, err
}

func (h BookProcurementCommandHandler) handleOnce(
	ctx context.Context, cmd BookProcurementCommand,
) (*procurement.Procurement, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	proc, err := uow.ProcurementRepository().Get(ctx, cmd.ProcurementID())
	if err != nil {
		return nil, err
	}
	if err := proc.Book(cmd.AgencyID()); err != nil {
		return nil, err
	}
	if err := uow.ProcurementRepository().Update(ctx, proc); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return proc, nil
}
