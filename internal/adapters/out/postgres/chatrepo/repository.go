package chatrepo

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/chat"
	"fulfillment/internal/core/domain/model/kernel"
)

// GormMessageRepository implements MessageRepository using GORM.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM message repository.
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Add saves a new message to the database.
func (r *GormMessageRepository) Add(ctx context.Context, aggregate *chat.Message) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByRequest retrieves a request's messages in send order.
func (r *GormMessageRepository) GetByRequest(
	ctx context.Context, requestID kernel.RequestID,
) ([]*chat.Message, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID.Int64()).
		Order("sent_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]*chat.Message, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
