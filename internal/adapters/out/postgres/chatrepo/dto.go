// Package chatrepo persists the chat messages attached to requests.
package chatrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/chat"
	"fulfillment/internal/core/domain/model/kernel"
)

// MessageDTO is the database row for a chat message. A null receiver means
// the message is visible to everyone on the request.
type MessageDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement:false"`
	RequestID  int64     `gorm:"not null;index"`
	SenderID   int64     `gorm:"not null"`
	ReceiverID *int64    `gorm:""`
	Body       string    `gorm:"type:text;not null"`
	SentAt     time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "messages".
func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(aggregate *chat.Message) MessageDTO {
	var receiverID *int64
	if aggregate.ReceiverID() != nil {
		raw := aggregate.ReceiverID().Int64()
		receiverID = &raw
	}

	return MessageDTO{
		ID:         aggregate.ID().Int64(),
		RequestID:  aggregate.RequestID().Int64(),
		SenderID:   aggregate.SenderID().Int64(),
		ReceiverID: receiverID,
		Body:       aggregate.Body(),
		SentAt:     aggregate.SentAt(),
	}
}

func toDomain(dto MessageDTO) (*chat.Message, error) {
	id, err := kernel.NewMessageID(dto.ID)
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.NewRequestID(dto.RequestID)
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.NewUserID(dto.SenderID)
	if err != nil {
		return nil, err
	}

	var receiverID *kernel.UserID
	if dto.ReceiverID != nil {
		resolved, receiverErr := kernel.NewUserID(*dto.ReceiverID)
		if receiverErr != nil {
			return nil, receiverErr
		}
		receiverID = &resolved
	}

	return chat.RestoreMessage(id, requestID, senderID, receiverID, dto.Body, dto.SentAt)
}
