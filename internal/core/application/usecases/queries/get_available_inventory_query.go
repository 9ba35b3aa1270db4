// Package queries contains the read operations of the fulfillment
// coordinator. Reads bypass the aggregates and go straight to SQL for read
// models the domain types would only obscure.
package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetAvailableInventoryQueryIsNotConstructed = errors.New(
	"GetAvailableInventoryQuery must be created via NewGetAvailableInventoryQuery constructor",
)

// GetAvailableInventoryQuery retrieves the catalog with per-item availability:
// stock on hand net of every quantity reserved by an active order. This is
// the same availability the checkout path enforces, derived instead of stored
// so it can never drift from the orders themselves.
type GetAvailableInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableInventoryQuery creates a query for the availability report.
func NewGetAvailableInventoryQuery() GetAvailableInventoryQuery {
	return GetAvailableInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableInventoryQueryIsNotConstructed)
}

// GetAvailableInventoryQueryResponse is one catalog line of the report.
type GetAvailableInventoryQueryResponse struct {
	ItemID    int64
	ItemName  string
	Total     int
	Reserved  int
	Available int
}
