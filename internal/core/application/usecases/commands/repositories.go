// Package commands contains the write operations of the fulfillment
// coordinator. Every command follows the same shape: a validated command
// object, a handler owning the transaction, and bounded optimistic retries
// around the whole unit. One root transition maps to one transaction, which
// is what makes cascades atomic.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW manages one business transaction across the coordinator's
	// aggregates. Cascades span request, order, delivery, alert, message,
	// and outbox writes, so a single broad unit of work serves every
	// handler.
	UoW interface {
		TxManager

		RequestRepository() ports.RequestRepository
		OrderRepository() ports.OrderRepository
		DeliveryRepository() ports.DeliveryRepository
		ProcurementRepository() ports.ProcurementRepository
		AlertRepository() ports.AlertRepository
		MessageRepository() ports.MessageRepository
		ItemRepository() ports.ItemRepository
		OutboxRepository() ports.OutboxRepository
		Sequences() ports.IdentifierAllocator
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
