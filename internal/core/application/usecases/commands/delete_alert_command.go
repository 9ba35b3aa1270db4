package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteAlertCommandIsNotConstructed = errors.New(
	"DeleteAlertCommand must be created via NewDeleteAlertCommand constructor",
)

// DeleteAlertCommand removes an alert. Only the creator or a sales user may
// delete one; deleting never touches the orders or requests the alert
// referenced.
type DeleteAlertCommand struct { //nolint:recvcheck //using for validation
	alertID     kernel.AlertID
	actingParty actor.Actor

	guard guard.ConstructorGuard
}

// NewDeleteAlertCommand creates a command to delete an alert.
func NewDeleteAlertCommand(alertID kernel.AlertID, actingParty actor.Actor) (DeleteAlertCommand, error) {
	if err := errors.Join(alertID.Validate(), actingParty.Role().Validate()); err != nil {
		return DeleteAlertCommand{}, err
	}

	return DeleteAlertCommand{
		alertID:     alertID,
		actingParty: actingParty,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAlertCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAlertCommandIsNotConstructed)
}

// AlertID returns the alert to delete.
func (c DeleteAlertCommand) AlertID() kernel.AlertID { return c.alertID }

// ActingParty returns the user performing the deletion.
func (c DeleteAlertCommand) ActingParty() actor.Actor { return c.actingParty }
