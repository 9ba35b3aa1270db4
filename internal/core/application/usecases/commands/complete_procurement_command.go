package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/procurement"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteProcurementCommandIsNotConstructed = errors.New(
	"CompleteProcurementCommand must be created via NewCompleteProcurementCommand constructor",
)

// CompleteProcurementCommand reconciles a booked procurement against what was
// actually received, splitting each booked quantity into accepted and
// discarded portions.
type CompleteProcurementCommand struct { //nolint:recvcheck //using for validation
	procurementID kernel.ProcurementID
	received      []procurement.ReceivedItem

	guard guard.ConstructorGuard
}

// NewCompleteProcurementCommand creates a command to complete a procurement.
// Received entries may cover a subset of the booked items; anything missing
// counts as fully accepted.
func NewCompleteProcurementCommand(
	procurementID kernel.ProcurementID, received []procurement.ReceivedItem,
) (CompleteProcurementCommand, error) {
	if err := procurementID.Validate(); err != nil {
		return CompleteProcurementCommand{}, err
	}
	seen := make(map[string]bool, len(received))
	for _, item := range received {
		if item.Name == "" {
			return CompleteProcurementCommand{}, errs.NewValueIsRequiredError("received item name")
		}
		if seen[item.Name] {
			return CompleteProcurementCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"received", errors.New("duplicate item "+item.Name))
		}
		seen[item.Name] = true
	}

	return CompleteProcurementCommand{
		procurementID: procurementID,
		received:      received,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteProcurementCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcurementCommandIsNotConstructed)
}

// ProcurementID returns the procurement to complete.
func (c CompleteProcurementCommand) ProcurementID() kernel.ProcurementID { return c.procurementID }

// Received returns the per-item received quantities.
func (c CompleteProcurementCommand) Received() []procurement.ReceivedItem { return c.received }
