package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new order under an existing request. The
// handler reserves the ordered quantities against available inventory before
// the order exists, so two concurrent submissions cannot jointly overcommit
// an item.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requestID         kernel.RequestID
	items             []order.LineItem
	deliveryDate      time.Time
	deliveryAddress   string
	deliveryTimeRange string
	customizations    string
	paymentMethod     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to add an order to a request.
func NewCreateOrderCommand(
	requestID kernel.RequestID,
	items []order.LineItem,
	deliveryDate time.Time,
	deliveryAddress string,
	deliveryTimeRange string,
	customizations string,
	paymentMethod string,
) (CreateOrderCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	seen := make(map[kernel.ItemID]bool, len(items))
	for _, line := range items {
		if err := line.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
		// Lines are checked against availability one item at a time, so a
		// split line could jointly exceed what each half passes alone.
		if seen[line.ItemID] {
			return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"items", errors.New("duplicate item "+line.ItemID.String()))
		}
		seen[line.ItemID] = true
	}
	if deliveryAddress == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("deliveryAddress")
	}

	return CreateOrderCommand{
		requestID:         requestID,
		items:             items,
		deliveryDate:      deliveryDate,
		deliveryAddress:   deliveryAddress,
		deliveryTimeRange: deliveryTimeRange,
		customizations:    customizations,
		paymentMethod:     paymentMethod,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// RequestID returns the owning request.
func (c CreateOrderCommand) RequestID() kernel.RequestID { return c.requestID }

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []order.LineItem { return c.items }

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time { return c.deliveryDate }

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// DeliveryTimeRange returns the requested delivery window.
func (c CreateOrderCommand) DeliveryTimeRange() string { return c.deliveryTimeRange }

// Customizations returns free-form preparation notes.
func (c CreateOrderCommand) Customizations() string { return c.customizations }

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }
