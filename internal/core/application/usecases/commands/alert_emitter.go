package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/chat"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// orderIDsOf projects an order slice onto its identifiers.
func orderIDsOf(orders []*order.Order) []kernel.OrderID {
	ids := make([]kernel.OrderID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}

// alertEmission bundles everything needed to persist one consolidated alert
// with its chat fan-out and notification outbox rows.
type alertEmission struct {
	key         uuid.UUID
	category    alert.Category
	details     string
	orders      []kernel.OrderID
	createdBy   kernel.UserID
	creatorRole actor.Role
	requests    []*request.Request
	now         time.Time
}

// notificationPayload is the JSON body delivered to the in-app channel.
type notificationPayload struct {
	AlertID   int64  `json:"alertId"`
	RequestID int64  `json:"requestId"`
	Category  string `json:"category"`
	Message   string `json:"message"`
}

// emitAlert persists the alert, one system chat message per implicated
// request (point person to customer), and one outbox entry per request for
// the in-app channel. Emission is idempotent on the root-transition key: a
// retried cascade that already emitted returns the existing alert untouched.
// Must run inside the caller's open transaction.
func emitAlert(ctx context.Context, uow UoW, em alertEmission) (*alert.Alert, error) {
	existing, err := uow.AlertRepository().GetByIdempotencyKey(ctx, em.key)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	rawID, err := uow.Sequences().Next(ctx, kernel.AlertKind)
	if err != nil {
		return nil, err
	}
	alertID, err := kernel.NewAlertID(rawID)
	if err != nil {
		return nil, err
	}

	created, err := alert.NewAlert(alertID, em.category, em.details, em.orders, em.createdBy, em.now, em.key)
	if err != nil {
		return nil, err
	}
	if err = uow.AlertRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	body := alert.FormatMessage(em.category, em.creatorRole, em.details)
	for _, req := range em.requests {
		rawMsgID, seqErr := uow.Sequences().Next(ctx, kernel.MessageKind)
		if seqErr != nil {
			return nil, seqErr
		}
		msgID, idErr := kernel.NewMessageID(rawMsgID)
		if idErr != nil {
			return nil, idErr
		}

		receiver := req.CustomerID()
		msg, msgErr := chat.NewMessage(msgID, req.ID(), req.PointPersonID(), &receiver, body, em.now)
		if msgErr != nil {
			return nil, msgErr
		}
		if msgErr = uow.MessageRepository().Add(ctx, msg); msgErr != nil {
			return nil, msgErr
		}

		payload, marshalErr := json.Marshal(notificationPayload{
			AlertID:   alertID.Int64(),
			RequestID: req.ID().Int64(),
			Category:  em.category.String(),
			Message:   body,
		})
		if marshalErr != nil {
			return nil, marshalErr
		}

		entry := ports.OutboxEntry{
			ID:        uuid.New(),
			AlertID:   alertID,
			RequestID: req.ID(),
			Payload:   payload,
			CreatedAt: em.now,
		}
		if outboxErr := uow.OutboxRepository().Add(ctx, entry); outboxErr != nil {
			return nil, outboxErr
		}
	}

	return created, nil
}
