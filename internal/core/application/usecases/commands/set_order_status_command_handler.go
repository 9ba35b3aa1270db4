package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/pkg/errs"
)

// SetOrderStatusCommandHandler applies order-level status transitions.
//
// Transitions into Dispatched write the order's delivery record; transitions
// into Delivered settle it (Delivered, Paid) and correct the parent request
// to Approved when its recorded status lags behind. Transitions into
// Cancelled emit one consolidated "Order Cancelled" alert covering every
// order newly cancelled by the batch.
type SetOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for order transitions.
func NewSetOrderStatusCommandHandler(uowFactory UoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the transition, retrying transparently on optimistic-lock
// conflicts. Returns every order the command touched: one element without
// ApplyToAll, the whole sibling set with it.
func (h SetOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd SetOrderStatusCommand,
) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result []*order.Order
	err := withConcurrencyRetry(ctx, func() error {
		batch, attemptErr := h.handleOnce(ctx, cmd)
		if attemptErr != nil {
			return attemptErr
		}
		result = batch
		return nil
	})
	return result, err
}

func (h SetOrderStatusCommandHandler) handleOnce(
	ctx context.Context,
	cmd SetOrderStatusCommand,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	root, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	batch := []*order.Order{root}
	if cmd.ApplyToAll() {
		batch, err = uow.OrderRepository().GetByRequest(ctx, root.RequestID())
		if err != nil {
			return nil, err
		}
	}

	if err = h.authorize(cmd); err != nil {
		return nil, err
	}

	newlyCancelled := make([]*order.Order, 0, len(batch))
	dispatched := make([]*order.Order, 0, len(batch))
	delivered := make([]*order.Order, 0, len(batch))
	changed := false

	for _, o := range batch {
		if o.Status() == cmd.Target() {
			continue
		}
		if err = o.TransitionTo(cmd.Target()); err != nil {
			return nil, err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return nil, err
		}
		changed = true

		switch cmd.Target() {
		case order.Cancelled:
			newlyCancelled = append(newlyCancelled, o)
		case order.Dispatched:
			dispatched = append(dispatched, o)
		case order.Delivered:
			delivered = append(delivered, o)
		}
	}

	if !changed {
		// Every order already carried the target status: idempotent no-op.
		return batch, nil
	}

	if len(dispatched) > 0 {
		if err = h.recordDispatches(ctx, uow, dispatched); err != nil {
			return nil, err
		}
	}

	if len(delivered) > 0 {
		if err = h.settleDeliveries(ctx, uow, root.RequestID(), delivered); err != nil {
			return nil, err
		}
	}

	if len(newlyCancelled) > 0 {
		parent, parentErr := uow.RequestRepository().Get(ctx, root.RequestID())
		if parentErr != nil {
			return nil, parentErr
		}
		if _, err = emitAlert(ctx, uow, alertEmission{
			key:         cmd.TransitionKey(),
			category:    alert.CategoryOrderCancelled,
			details:     cancellationDetails(newlyCancelled),
			orders:      orderIDsOf(newlyCancelled),
			createdBy:   cmd.ActingParty().ID(),
			creatorRole: cmd.ActingParty().Role(),
			requests:    []*request.Request{parent},
			now:         time.Now(),
		}); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return batch, nil
}

func (h SetOrderStatusCommandHandler) authorize(cmd SetOrderStatusCommand) error {
	if cmd.Target() == order.Cancelled {
		if !cmd.ActingParty().CanCancelOrder() {
			return errs.NewUnauthorizedError(cmd.ActingParty().Role().String(), "cancel an order")
		}
		return nil
	}

	if !cmd.ActingParty().CanManageOrders() {
		return errs.NewUnauthorizedError(cmd.ActingParty().Role().String(),
			"set an order to "+cmd.Target().String())
	}
	return nil
}

// recordDispatches writes the Dispatched leg of each order's delivery record
// when the goods leave the facility.
func (h SetOrderStatusCommandHandler) recordDispatches(
	ctx context.Context,
	uow UoW,
	dispatched []*order.Order,
) error {
	for _, o := range dispatched {
		record, err := uow.DeliveryRepository().GetByOrder(ctx, o.ID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			record, err = delivery.NewDelivery(o.ID(), o.RequestID(), orderWeight(o), o.DeliveryDate())
		}
		if err != nil {
			return err
		}

		record.MarkDispatched()
		if err = uow.DeliveryRepository().Upsert(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// settleDeliveries writes the Delivered/Paid dispatch records and corrects
// the parent request to Approved when a recurring multi-order request was
// left in an earlier state.
func (h SetOrderStatusCommandHandler) settleDeliveries(
	ctx context.Context,
	uow UoW,
	requestID kernel.RequestID,
	delivered []*order.Order,
) error {
	for _, o := range delivered {
		record, err := uow.DeliveryRepository().GetByOrder(ctx, o.ID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			record, err = delivery.NewDelivery(o.ID(), o.RequestID(), orderWeight(o), o.DeliveryDate())
		}
		if err != nil {
			return err
		}

		record.MarkDelivered()
		if err = uow.DeliveryRepository().Upsert(ctx, record); err != nil {
			return err
		}
	}

	parent, err := uow.RequestRepository().Get(ctx, requestID)
	if err != nil {
		return err
	}
	if parent.MarkApproved() {
		if err = uow.RequestRepository().Update(ctx, parent); err != nil {
			return err
		}
	}
	return nil
}

// orderWeight approximates shipment weight as the summed line quantities;
// catalog quantities are kilogram-denominated.
func orderWeight(o *order.Order) float64 {
	total := 0
	for _, line := range o.Items() {
		total += line.Quantity
	}
	return float64(total)
}

func cancellationDetails(cancelled []*order.Order) string {
	if len(cancelled) == 1 {
		return "Order " + cancelled[0].ID().String() + " was cancelled"
	}
	details := "Orders"
	for i, o := range cancelled {
		if i > 0 {
			details += ","
		}
		details += " " + o.ID().String()
	}
	return details + " were cancelled"
}
