// Package alert contains the alert record emitted as a side effect of status
// transitions or explicit user submission. Alerts are immutable once created;
// only deletion by the creator or a sales user is permitted.
package alert

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrAlertIsNotConstructed is returned when an Alert instance was not created
// through NewAlert or RestoreAlert.
var ErrAlertIsNotConstructed = errors.New("Alert must be created via NewAlert or RestoreAlert")

// Category is the human-readable classification of an alert. Transition-driven
// categories use the predefined constants; user-submitted alerts may carry any
// non-empty label.
type Category string

const (
	// CategoryRequestCancelled marks the consolidated alert of a request
	// cancellation cascade.
	CategoryRequestCancelled Category = "Request Cancelled"

	// CategoryRequestApproved marks the informational alert of a request
	// approval cascade.
	CategoryRequestApproved Category = "Request Approved"

	// CategoryOrderCancelled marks an order-level cancellation alert.
	CategoryOrderCancelled Category = "Order Cancelled"
)

// Validate checks the category label is present.
func (c Category) Validate() error {
	if c == "" {
		return errs.NewValueIsRequiredError("category")
	}
	return nil
}

// String returns the category label.
func (c Category) String() string { return string(c) }

// FormatMessage renders the system chat summary of an alert, addressed to the
// affected customer.
func FormatMessage(category Category, creatorRole actor.Role, details string) string {
	return fmt.Sprintf("⚠️ %s from %s] Reason: %s", category, creatorRole, details)
}

// Alert is an audit/notification record referencing the affected orders.
type Alert struct {
	id             kernel.AlertID
	category       Category
	details        string
	orders         []kernel.OrderID
	createdByID    kernel.UserID
	dateCreated    time.Time
	idempotencyKey uuid.UUID

	isConstructed bool
}

// NewAlert creates an alert. The idempotency key identifies the root
// transition that produced it, so a retried cascade re-presents the same key
// and cannot double-emit.
func NewAlert(
	id kernel.AlertID,
	category Category,
	details string,
	orders []kernel.OrderID,
	createdByID kernel.UserID,
	dateCreated time.Time,
	idempotencyKey uuid.UUID,
) (*Alert, error) {
	if err := errors.Join(id.Validate(), category.Validate(), createdByID.Validate()); err != nil {
		return nil, err
	}
	if details == "" {
		return nil, errs.NewValueIsRequiredError("details")
	}
	for _, orderID := range orders {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}
	if idempotencyKey == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("idempotencyKey")
	}

	return &Alert{
		id:             id,
		category:       category,
		details:        details,
		orders:         orders,
		createdByID:    createdByID,
		dateCreated:    dateCreated,
		idempotencyKey: idempotencyKey,
		isConstructed:  true,
	}, nil
}

// RestoreAlert reconstructs an alert from persistence.
func RestoreAlert(
	id kernel.AlertID,
	category Category,
	details string,
	orders []kernel.OrderID,
	createdByID kernel.UserID,
	dateCreated time.Time,
	idempotencyKey uuid.UUID,
) (*Alert, error) {
	if err := errors.Join(id.Validate(), category.Validate(), createdByID.Validate()); err != nil {
		return nil, err
	}

	return &Alert{
		id:             id,
		category:       category,
		details:        details,
		orders:         orders,
		createdByID:    createdByID,
		dateCreated:    dateCreated,
		idempotencyKey: idempotencyKey,
		isConstructed:  true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (a *Alert) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAlertIsNotConstructed
	}
	return nil
}

// ID returns the alert's identifier.
func (a *Alert) ID() kernel.AlertID { return a.id }

// Category returns the alert's classification.
func (a *Alert) Category() Category { return a.category }

// Details returns the human-readable reason.
func (a *Alert) Details() string { return a.details }

// Orders returns the affected order IDs.
func (a *Alert) Orders() []kernel.OrderID { return a.orders }

// CreatedByID returns the creating user.
func (a *Alert) CreatedByID() kernel.UserID { return a.createdByID }

// DateCreated returns the creation timestamp.
func (a *Alert) DateCreated() time.Time { return a.dateCreated }

// IdempotencyKey returns the root-transition key that produced the alert.
func (a *Alert) IdempotencyKey() uuid.UUID { return a.idempotencyKey }

// CanBeDeletedBy reports whether the given actor may delete this alert:
// its creator, or anyone holding the sales capability.
func (a *Alert) CanBeDeletedBy(actingParty actor.Actor) bool {
	return actingParty.ID() == a.createdByID || actingParty.CanDeleteAnyAlert()
}
