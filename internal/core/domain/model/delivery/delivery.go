// Package delivery contains the physical-dispatch record derived from an
// order. The record is written by the order-status paths, not mutated on its
// own: Dispatched and Delivered on the order drive the matching fields here.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Status tracks the physical dispatch of the goods.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending means the goods have not left the facility.
	Pending

	// Dispatched means the goods are on their way.
	Dispatched

	// Delivered means the goods arrived.
	Delivered
)

// PaymentStatus tracks whether the delivery has been paid for.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// Unpaid means payment is outstanding.
	Unpaid

	// Paid means payment was settled, recorded when the order is delivered.
	Paid
)

// StatusFromString parses a stored delivery status label.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "Pending":
		return Pending, nil
	case "Dispatched":
		return Dispatched, nil
	case "Delivered":
		return Delivered, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%q is not a valid delivery status", s))
	}
}

// PaymentStatusFromString parses a stored payment status label.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch s {
	case "Unpaid":
		return Unpaid, nil
	case "Paid":
		return Paid, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%q is not a valid payment status", s))
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Dispatched:
		return "Dispatched"
	case Delivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// Validate checks that the status is one of the defined delivery statuses.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case Unpaid:
		return "Unpaid"
	case Paid:
		return "Paid"
	default:
		return "Unknown"
	}
}

// Validate checks that the payment status is defined.
func (p PaymentStatus) Validate() error {
	if p != Unpaid && p != Paid {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", int(p)))
	}
	return nil
}

// Delivery is the dispatch record for one order's goods.
type Delivery struct {
	orderID       kernel.OrderID
	requestID     kernel.RequestID
	weight        float64
	status        Status
	paymentStatus PaymentStatus
	deliverBy     time.Time

	isConstructed bool
}

// NewDelivery creates a pending, unpaid delivery record for an order.
func NewDelivery(orderID kernel.OrderID, requestID kernel.RequestID, weight float64, deliverBy time.Time) (*Delivery, error) {
	if err := errors.Join(orderID.Validate(), requestID.Validate()); err != nil {
		return nil, err
	}
	if weight < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%f is negative", weight))
	}

	return &Delivery{
		orderID:       orderID,
		requestID:     requestID,
		weight:        weight,
		status:        Pending,
		paymentStatus: Unpaid,
		deliverBy:     deliverBy,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a delivery record from persistence.
func RestoreDelivery(
	orderID kernel.OrderID,
	requestID kernel.RequestID,
	weight float64,
	status Status,
	paymentStatus PaymentStatus,
	deliverBy time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		orderID.Validate(),
		requestID.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		orderID:       orderID,
		requestID:     requestID,
		weight:        weight,
		status:        status,
		paymentStatus: paymentStatus,
		deliverBy:     deliverBy,
		isConstructed: true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// OrderID returns the order this record tracks.
func (d *Delivery) OrderID() kernel.OrderID { return d.orderID }

// RequestID returns the owning request of that order.
func (d *Delivery) RequestID() kernel.RequestID { return d.requestID }

// Weight returns the shipment weight.
func (d *Delivery) Weight() float64 { return d.weight }

// Status returns the dispatch status.
func (d *Delivery) Status() Status { return d.status }

// PaymentStatus returns the payment status.
func (d *Delivery) PaymentStatus() PaymentStatus { return d.paymentStatus }

// DeliverBy returns the committed delivery deadline.
func (d *Delivery) DeliverBy() time.Time { return d.deliverBy }

// MarkDispatched records that the goods left the facility.
func (d *Delivery) MarkDispatched() {
	d.status = Dispatched
}

// MarkDelivered settles the record: goods arrived and payment is recorded as
// collected, mirroring the order's transition into Delivered.
func (d *Delivery) MarkDelivered() {
	d.status = Delivered
	d.paymentStatus = Paid
}
