package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateAlertCommandIsNotConstructed = errors.New(
	"CreateAlertCommand must be created via NewCreateAlertCommand constructor",
)

// CreateAlertCommand raises one consolidated alert over a set of orders,
// optionally cancelling the implicated orders and their parent requests in
// the same transaction.
type CreateAlertCommand struct { //nolint:recvcheck //using for validation
	category      alert.Category
	details       string
	orderIDs      []kernel.OrderID
	createdBy     kernel.UserID
	cancelOrders  bool
	cancelRequest bool
	transitionKey uuid.UUID

	guard guard.ConstructorGuard
}

// NewCreateAlertCommand creates a command to raise an alert.
func NewCreateAlertCommand(
	category alert.Category,
	details string,
	orderIDs []kernel.OrderID,
	createdBy kernel.UserID,
	cancelOrders bool,
	cancelRequest bool,
) (CreateAlertCommand, error) {
	if err := errors.Join(category.Validate(), createdBy.Validate()); err != nil {
		return CreateAlertCommand{}, err
	}
	if details == "" {
		return CreateAlertCommand{}, errs.NewValueIsRequiredError("details")
	}
	if len(orderIDs) == 0 {
		return CreateAlertCommand{}, errs.NewValueIsRequiredError("orderIDs")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return CreateAlertCommand{}, err
		}
	}
	// Cancelling a request without cancelling its orders would break the
	// cancelled-request invariant, so the broader flag implies the narrower.
	if cancelRequest {
		cancelOrders = true
	}

	return CreateAlertCommand{
		category:      category,
		details:       details,
		orderIDs:      orderIDs,
		createdBy:     createdBy,
		cancelOrders:  cancelOrders,
		cancelRequest: cancelRequest,
		transitionKey: uuid.New(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAlertCommand) Validate() error {
	return c.guard.Validate(ErrCreateAlertCommandIsNotConstructed)
}

// Category returns the alert classification.
func (c CreateAlertCommand) Category() alert.Category { return c.category }

// Details returns the human-readable reason.
func (c CreateAlertCommand) Details() string { return c.details }

// OrderIDs returns the implicated orders.
func (c CreateAlertCommand) OrderIDs() []kernel.OrderID { return c.orderIDs }

// CreatedBy returns the raising user.
func (c CreateAlertCommand) CreatedBy() kernel.UserID { return c.createdBy }

// CancelOrders reports whether the implicated orders are cancelled alongside.
func (c CreateAlertCommand) CancelOrders() bool { return c.cancelOrders }

// CancelRequest reports whether the parent requests are cancelled alongside.
func (c CreateAlertCommand) CancelRequest() bool { return c.cancelRequest }

// TransitionKey identifies the emission for idempotent retries.
func (c CreateAlertCommand) TransitionKey() uuid.UUID { return c.transitionKey }
