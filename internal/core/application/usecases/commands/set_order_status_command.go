package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand asks the coordinator to move one order — or, with
// ApplyToAll, every order under the same request — to a target status.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.OrderID
	target        order.Status
	actingParty   actor.Actor
	applyToAll    bool
	transitionKey uuid.UUID

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to transition an order.
// With applyToAll the same target is applied to every sibling order as a
// single cascade unit with one consolidated alert.
func NewSetOrderStatusCommand(
	orderID kernel.OrderID,
	target order.Status,
	actingParty actor.Actor,
	applyToAll bool,
) (SetOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		target.Validate(),
		actingParty.Role().Validate(),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{
		orderID:       orderID,
		target:        target,
		actingParty:   actingParty,
		applyToAll:    applyToAll,
		transitionKey: uuid.New(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c SetOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Target returns the requested status.
func (c SetOrderStatusCommand) Target() order.Status {
	return c.target
}

// ActingParty returns the resolved actor performing the transition.
func (c SetOrderStatusCommand) ActingParty() actor.Actor {
	return c.actingParty
}

// ApplyToAll reports whether the transition targets every sibling order.
func (c SetOrderStatusCommand) ApplyToAll() bool {
	return c.applyToAll
}

// TransitionKey returns the idempotency key of this root transition.
func (c SetOrderStatusCommand) TransitionKey() uuid.UUID {
	return c.transitionKey
}
