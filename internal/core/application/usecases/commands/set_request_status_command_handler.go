package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// SetRequestStatusCommandHandler applies request-level status transitions and
// their cascades: cancelling a request cancels its orders, approving a
// request releases them into production. The root write, every child write,
// and the alert/message/outbox emission share one transaction, so a cascade
// is never observable half-applied.
type SetRequestStatusCommandHandler struct {
	uowFactory UoWFactory
	planner    services.CascadePlanner
}

// NewSetRequestStatusCommandHandler creates a handler for request transitions.
func NewSetRequestStatusCommandHandler(uowFactory UoWFactory) SetRequestStatusCommandHandler {
	return SetRequestStatusCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewCascadePlanner(),
	}
}

// Handle processes the transition, retrying transparently on optimistic-lock
// conflicts up to the bound. Returns the request in its post-transition state.
func (h SetRequestStatusCommandHandler) Handle(
	ctx context.Context,
	cmd SetRequestStatusCommand,
) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *request.Request
	err := withConcurrencyRetry(ctx, func() error {
		req, attemptErr := h.handleOnce(ctx, cmd)
		if attemptErr != nil {
			return attemptErr
		}
		result = req
		return nil
	})
	return result, err
}

func (h SetRequestStatusCommandHandler) handleOnce(
	ctx context.Context,
	cmd SetRequestStatusCommand,
) (*request.Request, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	req, err := uow.RequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	// Re-applying the current status is an idempotent no-op.
	if req.Status() == cmd.Target() {
		return req, nil
	}

	if err = h.authorize(cmd); err != nil {
		return nil, err
	}

	children, err := uow.OrderRepository().GetByRequest(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	plan, err := h.planner.PlanRequestTransition(req, cmd.Target(), children)
	if err != nil {
		return nil, err
	}

	if err = req.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	progress := newCascadeProgress(req, plan)

	if err = uow.RequestRepository().Update(ctx, req); err != nil {
		return nil, progress.fail(err)
	}
	progress.done()

	for _, child := range plan.Orders {
		if err = child.TransitionTo(plan.OrderTarget); err != nil {
			return nil, progress.fail(err)
		}
		if err = uow.OrderRepository().Update(ctx, child); err != nil {
			return nil, progress.fail(err)
		}
		progress.done()
	}

	if plan.EmitsAlert() {
		orderIDs := orderIDsOf(plan.Orders)
		if _, err = emitAlert(ctx, uow, alertEmission{
			key:         cmd.TransitionKey(),
			category:    plan.AlertCategory,
			details:     plan.AlertDetails,
			orders:      orderIDs,
			createdBy:   cmd.ActingParty().ID(),
			creatorRole: cmd.ActingParty().Role(),
			requests:    []*request.Request{req},
			now:         time.Now(),
		}); err != nil {
			return nil, progress.fail(err)
		}
		progress.done()
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}

func (h SetRequestStatusCommandHandler) authorize(cmd SetRequestStatusCommand) error {
	if cmd.Target() == request.Cancelled {
		if !cmd.ActingParty().CanCancelRequest() {
			return errs.NewUnauthorizedError(cmd.ActingParty().Role().String(), "cancel a request")
		}
		return nil
	}

	if !cmd.ActingParty().CanManageRequests() {
		return errs.NewUnauthorizedError(cmd.ActingParty().Role().String(),
			"set a request to "+cmd.Target().String())
	}
	return nil
}

// cascadeProgress tracks which sub-steps of a cascade have run so a failure
// can be surfaced as CascadeIncomplete naming completed vs pending steps.
// Optimistic conflicts pass through untouched: the retry loop owns those.
type cascadeProgress struct {
	completed []string
	pending   []string
}

func newCascadeProgress(req *request.Request, plan services.CascadePlan) *cascadeProgress {
	pending := make([]string, 0, len(plan.Orders)+2)
	pending = append(pending, "request "+req.ID().String())
	for _, child := range plan.Orders {
		pending = append(pending, "order "+child.ID().String())
	}
	if plan.EmitsAlert() {
		pending = append(pending, "alert "+plan.AlertCategory.String())
	}
	return &cascadeProgress{pending: pending}
}

func (p *cascadeProgress) done() {
	if len(p.pending) == 0 {
		return
	}
	p.completed = append(p.completed, p.pending[0])
	p.pending = p.pending[1:]
}

func (p *cascadeProgress) fail(cause error) error {
	if errors.Is(cause, errs.ErrConcurrentModification) {
		return cause
	}
	return errs.NewCascadeIncompleteError(p.completed, p.pending, cause)
}
