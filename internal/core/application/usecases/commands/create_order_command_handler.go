package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler creates orders with a check-and-reserve pass over
// inventory: requested quantities are validated against stock net of every
// active order's reservations, inside the same transaction that persists the
// new order. Touching the item rows bumps their versions, so a concurrent
// checkout against the same items is forced to retry and re-check.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.ReservationLedger
}

// NewCreateOrderCommandHandler creates a handler for CreateOrderCommand.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewReservationLedger(),
	}
}

// Handle reserves inventory and persists the new order.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context, command CreateOrderCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var created *order.Order
	err := withConcurrencyRetry(ctx, func() error {
		var attemptErr error
		created, attemptErr = h.handleOnce(ctx, command)
		return attemptErr
	})
	return created, err
}

func (h CreateOrderCommandHandler) handleOnce(
	ctx context.Context, command CreateOrderCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	req, err := uow.RequestRepository().Get(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}

	active, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	for _, line := range command.Items() {
		item, err := uow.ItemRepository().Get(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		available := h.ledger.Available(item, active)
		if line.Quantity > available {
			return nil, errs.NewInsufficientInventoryError(
				line.ItemID.Int64(), line.Quantity, available)
		}
		// Version bump; serializes against concurrent checkouts of this item.
		if err := uow.ItemRepository().Update(ctx, item); err != nil {
			return nil, err
		}
	}

	nextID, err := uow.Sequences().Next(ctx, kernel.OrderKind)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewOrderID(nextID)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		orderID,
		req.ID(),
		command.Items(),
		command.DeliveryDate(),
		command.DeliveryAddress(),
		command.DeliveryTimeRange(),
		command.Customizations(),
		command.PaymentMethod(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}
