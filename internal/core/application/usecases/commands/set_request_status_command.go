package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/pkg/guard"
)

var ErrSetRequestStatusCommandIsNotConstructed = errors.New(
	"SetRequestStatusCommand must be created via NewSetRequestStatusCommand constructor",
)

// SetRequestStatusCommand asks the coordinator to move a customer request to
// a target status, cascading to its child orders as the transition requires.
//
// Every constructed command carries a fresh transition key; re-submitting the
// same command value retries the same root transition, so its alert emission
// stays deduplicated.
type SetRequestStatusCommand struct { //nolint:recvcheck //using for validation
	requestID     kernel.RequestID
	target        request.Status
	actingParty   actor.Actor
	transitionKey uuid.UUID

	guard guard.ConstructorGuard
}

// NewSetRequestStatusCommand creates a command to transition a request.
// Validates the request ID, the target status, and the acting party.
func NewSetRequestStatusCommand(
	requestID kernel.RequestID,
	target request.Status,
	actingParty actor.Actor,
) (SetRequestStatusCommand, error) {
	if err := errors.Join(
		requestID.Validate(),
		target.Validate(),
		actingParty.Role().Validate(),
	); err != nil {
		return SetRequestStatusCommand{}, err
	}

	return SetRequestStatusCommand{
		requestID:     requestID,
		target:        target,
		actingParty:   actingParty,
		transitionKey: uuid.New(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetRequestStatusCommandIsNotConstructed)
}

// RequestID returns the request to transition.
func (c SetRequestStatusCommand) RequestID() kernel.RequestID {
	return c.requestID
}

// Target returns the requested status.
func (c SetRequestStatusCommand) Target() request.Status {
	return c.target
}

// ActingParty returns the resolved actor performing the transition.
func (c SetRequestStatusCommand) ActingParty() actor.Actor {
	return c.actingParty
}

// TransitionKey returns the idempotency key of this root transition.
func (c SetRequestStatusCommand) TransitionKey() uuid.UUID {
	return c.transitionKey
}
