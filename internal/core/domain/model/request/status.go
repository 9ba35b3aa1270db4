package request

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer request.
//
// State transitions:
//
//	Received ──> Negotiation ──> Approved
//	    │             │
//	    └─────────────┴──> Cancelled
//
// Approved and Cancelled are terminal for direct transitions; an approved
// request can still be cancelled through the alert cascade, which bypasses
// this table via MarkCancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Received is the initial status of a newly submitted request.
	Received

	// Negotiation means the sales representative is refining the request.
	Negotiation

	// Approved releases the request's orders into production.
	Approved

	// Cancelled is terminal; all child orders are cancelled with it.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Received:    "Received",
		Negotiation: "Negotiation",
		Approved:    "Approved",
		Cancelled:   "Cancelled",
	}
}

// getTransitions returns the closed transition table for request statuses.
// A (from, to) pair absent from the table is an invalid transition.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Received:    {Negotiation, Cancelled},
		Negotiation: {Approved, Cancelled},
		Approved:    {},
		Cancelled:   {},
	}
}

// StatusFromString parses a stored status label.
func StatusFromString(s string) (Status, error) {
	for status, label := range getStatusStrings() {
		if status != Unknown && label == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("request status",
		fmt.Errorf("%q is not a valid request status", s))
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the status is one of the defined request statuses.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("request status",
			fmt.Errorf("%d is not a valid request status", int(s)))
	}
	return nil
}

// CanTransitionTo reports whether the target status is reachable from s per
// the transition table. Re-applying the current status is not a transition
// and is handled as a no-op by callers.
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
	return len(getTransitions()[s]) == 0 && s != Unknown
}
