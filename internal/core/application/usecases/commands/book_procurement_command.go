package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrBookProcurementCommandIsNotConstructed = errors.New(
	"BookProcurementCommand must be created via NewBookProcurementCommand constructor",
)

// BookProcurementCommand assigns a pending procurement to a supplying agency.
type BookProcurementCommand struct { //nolint:recvcheck //using for validation
	procurementID kernel.ProcurementID
	agencyID      kernel.UserID

	guard guard.ConstructorGuard
}

// NewBookProcurementCommand creates a command to book a procurement.
func NewBookProcurementCommand(
	procurementID kernel.ProcurementID, agencyID kernel.UserID,
) (BookProcurementCommand, error) {
	if err := errors.Join(procurementID.Validate(), agencyID.Validate()); err != nil {
		return BookProcurementCommand{}, err
	}

	return BookProcurementCommand{
		procurementID: procurementID,
		agencyID:      agencyID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BookProcurementCommand) Validate() error {
	return c.guard.Validate(ErrBookProcurementCommandIsNotConstructed)
}

// ProcurementID returns the procurement to book.
func (c BookProcurementCommand) ProcurementID() kernel.ProcurementID { return c.procurementID }

// AgencyID returns the agency taking the booking.
func (c BookProcurementCommand) AgencyID() kernel.UserID { return c.agencyID }
