package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
)

// Notification is one in-app notification to fan out for an alert. Payload is
// the pre-rendered JSON body; the key is the alert ID so downstream consumers
// can deduplicate at-least-once delivery.
type Notification struct {
	ID        uuid.UUID
	AlertID   kernel.AlertID
	RequestID kernel.RequestID
	Payload   []byte
}

// NotificationPublisher delivers notifications to the outbound channel.
// Publishing is at-least-once; consumers must be idempotent per alert ID.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification Notification) error
}

// OutboxEntry is a pending notification persisted alongside the transition
// that produced it, so a slow or failing notification path never blocks or
// loses a status transition.
type OutboxEntry struct {
	ID        uuid.UUID
	AlertID   kernel.AlertID
	RequestID kernel.RequestID
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}

// OutboxRepository is the persistence contract for the notification outbox.
type OutboxRepository interface {
	Add(ctx context.Context, entry OutboxEntry) error

	// GetPending retrieves up to limit unpublished entries, oldest first.
	GetPending(ctx context.Context, limit int) ([]OutboxEntry, error)

	// MarkPublished removes the entry from the pending set.
	MarkPublished(ctx context.Context, id uuid.UUID) error

	// MarkFailed increments the entry's attempt counter.
	MarkFailed(ctx context.Context, id uuid.UUID) error
}
