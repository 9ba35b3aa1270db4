// Package ports defines the contracts the coordinator consumes: persistence
// per aggregate, the unit of work, the identifier allocator, the user
// directory, and the outbound notification channel.
package ports

import (
	"context"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/chat"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/procurement"
	"fulfillment/internal/core/domain/model/request"
)

// RequestRepository is the persistence contract for request aggregates.
// Update applies optimistic concurrency on the aggregate's version and
// returns ConcurrentModification when the row moved underneath it.
type RequestRepository interface {
	Add(ctx context.Context, aggregate *request.Request) error
	Update(ctx context.Context, aggregate *request.Request) error
	Get(ctx context.Context, id kernel.RequestID) (*request.Request, error)
}

// OrderRepository is the persistence contract for order aggregates.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByRequest retrieves every order under a request, in ID order.
	GetByRequest(ctx context.Context, requestID kernel.RequestID) ([]*order.Order, error)

	// GetAllActive retrieves every order in a reservation-contributing
	// status (WaitingApproval or Preparing).
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}

// DeliveryRepository is the persistence contract for dispatch records.
type DeliveryRepository interface {
	// Upsert creates the record on first write and replaces it afterwards;
	// delivery records are derived state keyed by order ID.
	Upsert(ctx context.Context, record *delivery.Delivery) error
	GetByOrder(ctx context.Context, orderID kernel.OrderID) (*delivery.Delivery, error)
}

// ProcurementRepository is the persistence contract for procurement shipments.
type ProcurementRepository interface {
	Add(ctx context.Context, aggregate *procurement.Procurement) error
	Update(ctx context.Context, aggregate *procurement.Procurement) error
	Get(ctx context.Context, id kernel.ProcurementID) (*procurement.Procurement, error)
}

// AlertRepository is the persistence contract for alert records.
type AlertRepository interface {
	Add(ctx context.Context, aggregate *alert.Alert) error
	Get(ctx context.Context, id kernel.AlertID) (*alert.Alert, error)
	Delete(ctx context.Context, id kernel.AlertID) error

	// GetByIdempotencyKey resolves the alert already emitted for a root
	// transition, if any, so retried cascades do not double-emit.
	GetByIdempotencyKey(ctx context.Context, key uuid.UUID) (*alert.Alert, error)
}

// MessageRepository is the persistence contract for chat messages.
type MessageRepository interface {
	Add(ctx context.Context, aggregate *chat.Message) error
	GetByRequest(ctx context.Context, requestID kernel.RequestID) ([]*chat.Message, error)
}

// ItemRepository is the persistence contract for catalog items. Update
// carries the optimistic version, which also serializes check-and-reserve:
// touching the row conflicts concurrent reservations of the same item.
type ItemRepository interface {
	Get(ctx context.Context, id kernel.ItemID) (*item.Item, error)
	GetByName(ctx context.Context, name string) (*item.Item, error)
	Update(ctx context.Context, aggregate *item.Item) error
}
