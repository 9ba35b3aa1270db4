package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CreateAlertCommandHandler raises a consolidated alert and, when asked,
// cancels the implicated orders and parent requests in the same transaction.
// The alert, its chat fan-out, and any cascaded cancellations commit or roll
// back together.
type CreateAlertCommandHandler struct {
	uowFactory UoWFactory
	directory  ports.UserDirectory
	planner    services.CascadePlanner
}

// NewCreateAlertCommandHandler creates a handler for CreateAlertCommand.
func NewCreateAlertCommandHandler(
	uowFactory UoWFactory, directory ports.UserDirectory,
) CreateAlertCommandHandler {
	return CreateAlertCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		planner:    services.NewCascadePlanner(),
	}
}

// Handle raises the alert, retrying on concurrent modification.
func (h CreateAlertCommandHandler) Handle(
	ctx context.Context, cmd CreateAlertCommand,
) (*alert.Alert, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	creator, err := h.directory.Resolve(ctx, cmd.CreatedBy())
	if err != nil {
		return nil, err
	}

	var created *alert.Alert
	err = withConcurrencyRetry(ctx, func() error {
		var attemptErr error
		created, attemptErr = h.handleOnce(ctx, cmd, creator)
		return attemptErr
	})
	return created, err
}

func (h CreateAlertCommandHandler) handleOnce(
	ctx context.Context, cmd CreateAlertCommand, creator ports.UserProfile,
) (*alert.Alert, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	implicated := make([]*order.Order, 0, len(cmd.OrderIDs()))
	parentIDs := make([]kernel.RequestID, 0, 1)
	seenParents := make(map[kernel.RequestID]bool)
	for _, id := range cmd.OrderIDs() {
		ord, err := uow.OrderRepository().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		implicated = append(implicated, ord)
		if !seenParents[ord.RequestID()] {
			seenParents[ord.RequestID()] = true
			parentIDs = append(parentIDs, ord.RequestID())
		}
	}

	parents := make([]*request.Request, 0, len(parentIDs))
	for _, id := range parentIDs {
		parent, err := uow.RequestRepository().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		parents = append(parents, parent)
	}

	if cmd.CancelRequest() {
		if err := h.cancelRequests(ctx, uow, parents); err != nil {
			return nil, err
		}
	} else if cmd.CancelOrders() {
		if err := cancelOrders(ctx, uow, implicated); err != nil {
			return nil, err
		}
	}

	created, err := emitAlert(ctx, uow, alertEmission{
		key:         cmd.TransitionKey(),
		category:    cmd.Category(),
		details:     cmd.Details(),
		orders:      cmd.OrderIDs(),
		createdBy:   cmd.CreatedBy(),
		creatorRole: creator.Role,
		requests:    parents,
		now:         time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// cancelRequests cancels each parent request together with all of its child
// orders, not just the implicated ones. A request already cancelled is left
// alone.
func (h CreateAlertCommandHandler) cancelRequests(
	ctx context.Context, uow UoW, parents []*request.Request,
) error {
	for _, parent := range parents {
		if parent.Status() == request.Cancelled {
			continue
		}

		children, err := uow.OrderRepository().GetByRequest(ctx, parent.ID())
		if err != nil {
			return err
		}
		plan, err := h.planner.PlanRequestTransition(parent, request.Cancelled, children)
		if err != nil {
			return err
		}

		// Forced cancel: the alert cascade may take down requests the
		// customer-facing transition table holds terminal.
		parent.MarkCancelled()
		if err := uow.RequestRepository().Update(ctx, parent); err != nil {
			return err
		}
		if err := cancelOrders(ctx, uow, plan.Orders); err != nil {
			return err
		}
	}
	return nil
}

// cancelOrders transitions each order to Cancelled and persists it, skipping
// orders already there.
func cancelOrders(ctx context.Context, uow UoW, orders []*order.Order) error {
	for _, ord := range orders {
		if ord.Status() == order.Cancelled {
			continue
		}
		if err := ord.TransitionTo(order.Cancelled); err != nil {
			return err
		}
		if err := uow.OrderRepository().Update(ctx, ord); err != nil {
			return err
		}
	}
	return nil
}
