package services

import (
	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/pkg/errs"
)

// CascadePlan is the derived set of child transitions and the alert emission
// required by one root transition. The plan is computed up front so a cascade
// either applies completely or is rejected before any child is touched.
type CascadePlan struct {
	// Orders to transition, paired with the shared target status.
	Orders []*order.Order

	// OrderTarget is the status every planned order moves to.
	OrderTarget order.Status

	// AlertCategory classifies the consolidated alert to emit, empty when
	// the root transition emits none.
	AlertCategory alert.Category

	// AlertDetails is the human-readable reason carried by the alert.
	AlertDetails string
}

// EmitsAlert reports whether applying the plan must produce an alert.
func (p CascadePlan) EmitsAlert() bool {
	return p.AlertCategory != ""
}

// CascadePlanner derives the child transitions of a request-level root
// transition. It is a pure domain service: it inspects aggregates and plans,
// the application layer applies and persists.
type CascadePlanner struct{}

// NewCascadePlanner creates a planner.
func NewCascadePlanner() CascadePlanner {
	return CascadePlanner{}
}

// PlanRequestTransition derives the cascade a request transition requires.
//
//   - Into Cancelled: every active child order is cancelled. Already
//     cancelled children are skipped (idempotent re-application); a child in
//     Dispatched or Delivered makes the whole cascade invalid, because a
//     cancelled request must have no child outside Cancelled.
//   - Into Approved: every WaitingApproval child moves to Preparing;
//     children already past approval are left alone.
//   - Other targets cascade nothing.
func (CascadePlanner) PlanRequestTransition(
	req *request.Request,
	target request.Status,
	children []*order.Order,
) (CascadePlan, error) {
	if err := req.Validate(); err != nil {
		return CascadePlan{}, err
	}

	switch target {
	case request.Cancelled:
		toCancel := make([]*order.Order, 0, len(children))
		for _, child := range children {
			if child.Status() == order.Cancelled {
				continue
			}
			if !child.Status().CanTransitionTo(order.Cancelled) {
				return CascadePlan{}, errs.NewInvalidTransitionError(
					"order", child.Status().String(), order.Cancelled.String())
			}
			toCancel = append(toCancel, child)
		}
		return CascadePlan{
			Orders:        toCancel,
			OrderTarget:   order.Cancelled,
			AlertCategory: alert.CategoryRequestCancelled,
			AlertDetails:  "Request " + req.ID().String() + " was cancelled",
		}, nil

	case request.Approved:
		toRelease := make([]*order.Order, 0, len(children))
		for _, child := range children {
			if child.Status() == order.WaitingApproval {
				toRelease = append(toRelease, child)
			}
		}
		return CascadePlan{
			Orders:        toRelease,
			OrderTarget:   order.Preparing,
			AlertCategory: alert.CategoryRequestApproved,
			AlertDetails:  "Request " + req.ID().String() + " was approved and released into production",
		}, nil

	default:
		return CascadePlan{}, nil
	}
}
