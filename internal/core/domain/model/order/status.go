package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	WaitingApproval ──> Preparing ──> Dispatched ──> Delivered
//	       │                │
//	       └────────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further mutation is permitted.
// Orders in WaitingApproval or Preparing are "active" and contribute their
// line-item quantities to the inventory reservation ledger.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// WaitingApproval is the initial status of an order under an
	// unapproved request.
	WaitingApproval

	// Preparing means the order was released into production by the
	// request's approval.
	Preparing

	// Dispatched means the goods left the facility.
	Dispatched

	// Delivered is terminal; it also settles the delivery record.
	Delivered

	// Cancelled is terminal; the order stops contributing to reservations.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		WaitingApproval: "WaitingApproval",
		Preparing:       "Preparing",
		Dispatched:      "Dispatched",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// getTransitions returns the closed transition table for order statuses.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		WaitingApproval: {Preparing, Cancelled},
		Preparing:       {Dispatched, Cancelled},
		Dispatched:      {Delivered},
		Delivered:       {},
		Cancelled:       {},
	}
}

// StatusFromString parses a stored status label.
func StatusFromString(s string) (Status, error) {
	for status, label := range getStatusStrings() {
		if status != Unknown && label == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid order status", s))
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the status is one of the defined order statuses.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", int(s)))
	}
	return nil
}

// CanTransitionTo reports whether the target status is reachable from s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, reachable := range getTransitions()[s] {
		if reachable == target {
			return true
		}
	}
	return false
}

// IsActive reports whether the order contributes to reserved inventory.
func (s Status) IsActive() bool {
	return s == WaitingApproval || s == Preparing
}

// IsTerminal reports whether no further transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
