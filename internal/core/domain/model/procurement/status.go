package procurement

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a procurement shipment.
//
// State transitions:
//
//	Pending ──> Booked ──> Completed
//	   │           │
//	   └───────────┴──> Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a planned shipment.
	Pending

	// Booked means a delivery agency was attached to the shipment.
	Booked

	// Completed means the shipment was received and reconciled.
	Completed

	// Cancelled is terminal; the shipment will not arrive.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Booked:    "Booked",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Booked, Cancelled},
		Booked:    {Completed, Cancelled},
		Completed: {},
		Cancelled: {},
	}
}

// StatusFromString parses a stored status label.
func StatusFromString(s string) (Status, error) {
	for status, label := range getStatusStrings() {
		if status != Unknown && label == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("procurement status",
		fmt.Errorf("%q is not a valid procurement status", s))
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the status is one of the defined procurement statuses.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("procurement status",
			fmt.Errorf("%d is not a valid procurement status", int(s)))
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

// IsTerminal reports whether no further transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
