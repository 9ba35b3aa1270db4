package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. One root transition
// runs inside one unit of work: the root write, the cascaded child writes,
// the alert, the chat messages, and the notification outbox row commit or
// roll back together. Client code manages the transaction lifecycle
// explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// RequestRepository returns a RequestRepository bound to the current transaction.
	RequestRepository() RequestRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// ProcurementRepository returns a ProcurementRepository bound to the current transaction.
	ProcurementRepository() ProcurementRepository

	// AlertRepository returns an AlertRepository bound to the current transaction.
	AlertRepository() AlertRepository

	// MessageRepository returns a MessageRepository bound to the current transaction.
	MessageRepository() MessageRepository

	// ItemRepository returns an ItemRepository bound to the current transaction.
	ItemRepository() ItemRepository

	// OutboxRepository returns an OutboxRepository bound to the current transaction.
	OutboxRepository() OutboxRepository

	// Sequences returns the identifier allocator bound to the current
	// transaction, so allocated IDs roll back with the writes using them.
	Sequences() IdentifierAllocator
}
