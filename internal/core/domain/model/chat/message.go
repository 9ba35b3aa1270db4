// Package chat contains the chat message record tied to a request's
// conversation thread. System messages produced by the alert dispatcher use
// the same record with the sender set to the request's point person.
package chat

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through NewMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

// Message is one chat entry in a request's thread. ReceiverID is nil for
// broadcast system messages.
type Message struct {
	id         kernel.MessageID
	requestID  kernel.RequestID
	senderID   kernel.UserID
	receiverID *kernel.UserID
	body       string
	sentAt     time.Time

	isConstructed bool
}

// NewMessage creates a chat message in a request's thread.
func NewMessage(
	id kernel.MessageID,
	requestID kernel.RequestID,
	senderID kernel.UserID,
	receiverID *kernel.UserID,
	body string,
	sentAt time.Time,
) (*Message, error) {
	if err := errors.Join(id.Validate(), requestID.Validate(), senderID.Validate()); err != nil {
		return nil, err
	}
	if receiverID != nil {
		if err := receiverID.Validate(); err != nil {
			return nil, err
		}
	}
	if body == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Message{
		id:            id,
		requestID:     requestID,
		senderID:      senderID,
		receiverID:    receiverID,
		body:          body,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs a message from persistence.
func RestoreMessage(
	id kernel.MessageID,
	requestID kernel.RequestID,
	senderID kernel.UserID,
	receiverID *kernel.UserID,
	body string,
	sentAt time.Time,
) (*Message, error) {
	if err := errors.Join(id.Validate(), requestID.Validate(), senderID.Validate()); err != nil {
		return nil, err
	}

	return &Message{
		id:            id,
		requestID:     requestID,
		senderID:      senderID,
		receiverID:    receiverID,
		body:          body,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's identifier.
func (m *Message) ID() kernel.MessageID { return m.id }

// RequestID returns the thread this message belongs to.
func (m *Message) RequestID() kernel.RequestID { return m.requestID }

// SenderID returns the sending user.
func (m *Message) SenderID() kernel.UserID { return m.senderID }

// ReceiverID returns the addressed user, nil for broadcasts.
func (m *Message) ReceiverID() *kernel.UserID { return m.receiverID }

// Body returns the message text.
func (m *Message) Body() string { return m.body }

// SentAt returns the send timestamp.
func (m *Message) SentAt() time.Time { return m.sentAt }
