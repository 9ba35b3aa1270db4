package request

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

// Request is a customer's standing order-intent. It owns zero or more orders
// by shared request ID and is the root of the request-level cascades: its
// status changes propagate to the child orders.
type Request struct {
	id            kernel.RequestID
	customerID    kernel.UserID
	pointPersonID kernel.UserID
	status        Status
	requestDate   time.Time
	version       int

	isConstructed bool
}

// NewRequest creates a freshly received request.
func NewRequest(
	id kernel.RequestID,
	customerID kernel.UserID,
	pointPersonID kernel.UserID,
	requestDate time.Time,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		pointPersonID.Validate(),
	); err != nil {
		return nil, err
	}
	if requestDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("requestDate")
	}

	return &Request{
		id:            id,
		customerID:    customerID,
		pointPersonID: pointPersonID,
		status:        Received,
		requestDate:   requestDate,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreRequest reconstructs a request from persistence, including the row
// version used for optimistic concurrency.
func RestoreRequest(
	id kernel.RequestID,
	customerID kernel.UserID,
	pointPersonID kernel.UserID,
	status Status,
	requestDate time.Time,
	version int,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		pointPersonID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Request{
		id:            id,
		customerID:    customerID,
		pointPersonID: pointPersonID,
		status:        status,
		requestDate:   requestDate,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's identifier.
func (r *Request) ID() kernel.RequestID { return r.id }

// CustomerID returns the owning customer.
func (r *Request) CustomerID() kernel.UserID { return r.customerID }

// PointPersonID returns the assigned sales representative.
func (r *Request) PointPersonID() kernel.UserID { return r.pointPersonID }

// Status returns the current status.
func (r *Request) Status() Status { return r.status }

// RequestDate returns the submission date.
func (r *Request) RequestDate() time.Time { return r.requestDate }

// Version returns the persistence row version for optimistic concurrency.
func (r *Request) Version() int { return r.version }

// TransitionTo moves the request to the target status.
//
// Re-applying the current status is an idempotent no-op. Any (current, target)
// pair absent from the transition table fails with InvalidTransition and
// leaves the request unchanged.
func (r *Request) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == r.status {
		return nil
	}
	if !r.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("request", r.status.String(), target.String())
	}

	r.status = target
	return nil
}

// MarkCancelled forces the request into Cancelled regardless of the table.
// Used only by the alert cascade: an alert implicating an approved request's
// orders may take the whole request down, a route the customer-facing
// transition table does not offer. Reports whether the status changed.
func (r *Request) MarkCancelled() bool {
	if r.status == Cancelled {
		return false
	}
	r.status = Cancelled
	return true
}

// MarkApproved forces the request into Approved regardless of the table.
// Used only by the order-delivered correction path: a delivered order under a
// recurring multi-order request proves the request was approved even if its
// recorded status says otherwise. No-op when already Approved.
func (r *Request) MarkApproved() bool {
	if r.status == Approved {
		return false
	}
	r.status = Approved
	return true
}
