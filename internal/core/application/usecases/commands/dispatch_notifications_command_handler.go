package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

const (
	dispatchBatchSize      = 50
	dispatchPublishTimeout = 5 * time.Second
)

// DispatchNotificationsCommandHandler drains the notification outbox: it
// publishes pending entries to the in-app channel and marks them published.
// Delivery is at-least-once; an entry published but not yet marked is
// republished on the next run, and consumers deduplicate on the alert ID.
type DispatchNotificationsCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	metrics    *metrics.Registry
}

// NewDispatchNotificationsCommandHandler creates an outbox drain handler.
func NewDispatchNotificationsCommandHandler(
	uowFactory UoWFactory, publisher ports.NotificationPublisher, registry *metrics.Registry,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		metrics:    registry,
	}
}

// Handle publishes one batch of pending notifications. A failing entry is
// recorded and skipped; it does not block the rest of the batch.
func (h DispatchNotificationsCommandHandler) Handle(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entries, err := uow.OutboxRepository().GetPending(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		publishCtx, cancel := context.WithTimeout(ctx, dispatchPublishTimeout)
		pubErr := h.publisher.Publish(publishCtx, ports.Notification{
			ID:        entry.ID,
			AlertID:   entry.AlertID,
			RequestID: entry.RequestID,
			Payload:   entry.Payload,
		})
		cancel()

		if pubErr != nil {
			zap.L().Warn("notification publish failed",
				zap.String("outboxId", entry.ID.String()),
				zap.Int64("alertId", entry.AlertID.Int64()),
				zap.Int("attempts", entry.Attempts+1),
				zap.Error(pubErr))
			h.metrics.NotificationsFailed.Inc()
			if err := uow.OutboxRepository().MarkFailed(ctx, entry.ID); err != nil {
				return err
			}
			continue
		}

		h.metrics.NotificationsPublished.Inc()
		if err := uow.OutboxRepository().MarkPublished(ctx, entry.ID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
