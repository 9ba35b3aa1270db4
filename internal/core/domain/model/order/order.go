package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// LineItem is one item-quantity line of an order.
type LineItem struct {
	ItemID   kernel.ItemID
	Quantity int
}

// Validate checks the line's item reference and quantity.
func (l LineItem) Validate() error {
	if err := l.ItemID.Validate(); err != nil {
		return err
	}
	if l.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", l.Quantity))
	}
	return nil
}

// Order is one concrete delivery commitment under a request.
//
// Order follows these invariants:
//   - Must have valid order and request identifiers
//   - Must have at least one line item, each with positive quantity
//   - Status transitions follow the table in Status
//   - While active (WaitingApproval or Preparing) its quantities count as
//     reserved inventory
type Order struct {
	id                kernel.OrderID
	requestID         kernel.RequestID
	status            Status
	items             []LineItem
	deliveryDate      time.Time
	deliveryAddress   string
	deliveryTimeRange string
	customizations    string
	paymentMethod     string
	version           int

	isConstructed bool
}

// NewOrder creates an order in WaitingApproval status.
func NewOrder(
	id kernel.OrderID,
	requestID kernel.RequestID,
	items []LineItem,
	deliveryDate time.Time,
	deliveryAddress string,
	deliveryTimeRange string,
	customizations string,
	paymentMethod string,
) (*Order, error) {
	if err := errors.Join(id.Validate(), requestID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}

	return &Order{
		id:                id,
		requestID:         requestID,
		status:            WaitingApproval,
		items:             items,
		deliveryDate:      deliveryDate,
		deliveryAddress:   deliveryAddress,
		deliveryTimeRange: deliveryTimeRange,
		customizations:    customizations,
		paymentMethod:     paymentMethod,
		version:           1,
		isConstructed:     true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.OrderID,
	requestID kernel.RequestID,
	status Status,
	items []LineItem,
	deliveryDate time.Time,
	deliveryAddress string,
	deliveryTimeRange string,
	customizations string,
	paymentMethod string,
	version int,
) (*Order, error) {
	if err := errors.Join(id.Validate(), requestID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		requestID:         requestID,
		status:            status,
		items:             items,
		deliveryDate:      deliveryDate,
		deliveryAddress:   deliveryAddress,
		deliveryTimeRange: deliveryTimeRange,
		customizations:    customizations,
		paymentMethod:     paymentMethod,
		version:           version,
		isConstructed:     true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID { return o.id }

// RequestID returns the owning request. The reference is weak: the store does
// not enforce the parent's existence.
func (o *Order) RequestID() kernel.RequestID { return o.requestID }

// Status returns the current status.
func (o *Order) Status() Status { return o.status }

// Items returns the order's line items.
func (o *Order) Items() []LineItem { return o.items }

// DeliveryDate returns the committed delivery date.
func (o *Order) DeliveryDate() time.Time { return o.deliveryDate }

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// DeliveryTimeRange returns the agreed delivery window.
func (o *Order) DeliveryTimeRange() string { return o.deliveryTimeRange }

// Customizations returns free-form preparation notes.
func (o *Order) Customizations() string { return o.customizations }

// PaymentMethod returns the chosen payment method.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// Version returns the persistence row version for optimistic concurrency.
func (o *Order) Version() int { return o.version }

// IsActive reports whether the order currently contributes to reservations.
func (o *Order) IsActive() bool { return o.status.IsActive() }

// QuantityOf returns the ordered quantity of the given item, 0 if absent.
func (o *Order) QuantityOf(itemID kernel.ItemID) int {
	total := 0
	for _, line := range o.items {
		if line.ItemID == itemID {
			total += line.Quantity
		}
	}
	return total
}

// TransitionTo moves the order to the target status.
//
// Re-applying the current status is an idempotent no-op. Delivered and
// Cancelled are terminal; any pair absent from the transition table fails
// with InvalidTransition and leaves the order unchanged.
func (o *Order) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == o.status {
		return nil
	}
	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("order", o.status.String(), target.String())
	}

	o.status = target
	return nil
}
