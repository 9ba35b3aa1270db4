// Package actor models the acting party of a coordinator operation and its
// capabilities. Role-based branching is concentrated here: command handlers
// check one capability method at the engine boundary instead of comparing
// role strings at every call site.
package actor

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Role is the closed set of actor roles known to the coordinator.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Customer is a restaurant-side user who owns requests and orders.
	Customer

	// Sales is a supplier-side representative with full lifecycle control.
	Sales
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Customer:    "Customer",
		Sales:       "Sales",
	}
}

// RoleFromString parses a stored role label.
func RoleFromString(s string) (Role, error) {
	for role, label := range getRoleStrings() {
		if role != UnknownRole && label == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the role is one of the defined roles.
func (r Role) Validate() error {
	if r != Customer && r != Sales {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

// Actor is the resolved identity performing an operation.
type Actor struct {
	id   kernel.UserID
	role Role
}

// NewActor creates an actor from a resolved user identity.
func NewActor(id kernel.UserID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UserID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// CanCancelRequest reports whether the actor may request cancellation of a
// customer request. Both roles may; the transition table limits the states
// cancellation is reachable from.
func (a Actor) CanCancelRequest() bool {
	return a.role == Customer || a.role == Sales
}

// CanManageRequests reports whether the actor may apply arbitrary reachable
// request transitions (negotiation, approval). Sales only.
func (a Actor) CanManageRequests() bool {
	return a.role == Sales
}

// CanManageOrders reports whether the actor may apply order transitions
// beyond cancelling their own orders. Sales only.
func (a Actor) CanManageOrders() bool {
	return a.role == Sales
}

// CanCancelOrder reports whether the actor may cancel an order.
func (a Actor) CanCancelOrder() bool {
	return a.role == Customer || a.role == Sales
}

// CanDeleteAnyAlert reports whether the actor may delete alerts created by
// other users. Sales only; creators may always delete their own.
func (a Actor) CanDeleteAnyAlert() bool {
	return a.role == Sales
}
