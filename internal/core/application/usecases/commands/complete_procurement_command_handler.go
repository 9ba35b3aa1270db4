package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/procurement"
	"fulfillment/internal/pkg/errs"
)

// CompleteProcurementCommandHandler reconciles booked procurements. Accepted
// quantities flow back into catalog stock in the same transaction, so a
// completed procurement and the stock it replenished are never observable out
// of step.
type CompleteProcurementCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteProcurementCommandHandler creates a handler for CompleteProcurementCommand.
func NewCompleteProcurementCommandHandler(uowFactory UoWFactory) CompleteProcurementCommandHandler {
	return CompleteProcurementCommandHandler{uowFactory: uowFactory}
}

// Handle completes the procurement, retrying on concurrent modification.
func (h CompleteProcurementCommandHandler) Handle(
	ctx context.Context, cmd CompleteProcurementCommand,
) (*procurement.Procurement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var completed *procurement.Procurement
	err := withConcurrencyRetry(ctx, func() error {
		var attemptErr error
		completed, attemptErr = h.handleOnce(ctx, cmd)
		return attemptErr
	})
	return completed, err
}

func (h CompleteProcurementCommandHandler) handleOnce(
	ctx context.Context, cmd CompleteProcurementCommand,
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
	if err := proc.Complete(cmd.Received(), time.Now()); err != nil {
		return nil, err
	}

	for _, completion := range proc.Completions() {
		if completion.Accepted == 0 {
			continue
		}
		item, getErr := uow.ItemRepository().GetByName(ctx, completion.Name)
		if getErr != nil {
			// Procured goods without a catalog entry replenish nothing.
			if errors.Is(getErr, errs.ErrObjectNotFound) {
				continue
			}
			return nil, getErr
		}
		if addErr := item.AddStock(completion.Accepted); addErr != nil {
			return nil, addErr
		}
		if updErr := uow.ItemRepository().Update(ctx, item); updErr != nil {
			return nil, updErr
		}
	}

	if err := uow.ProcurementRepository().Update(ctx, proc); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return proc, nil
}
