// Package outboxrepo persists the notification outbox. Entries are written
// in the transitioning transaction and drained by the dispatch job, so the
// notification path can lag or fail without touching a transition.
package outboxrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// OutboxEntryDTO is the database row for a pending notification.
type OutboxEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AlertID   int64     `gorm:"not null;index"`
	RequestID int64     `gorm:"not null"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	Attempts  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "notification_outbox".
func (OutboxEntryDTO) TableName() string {
	return "notification_outbox"
}

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add enqueues a pending notification.
func (r *GormOutboxRepository) Add(ctx context.Context, entry ports.OutboxEntry) error {
	dto := OutboxEntryDTO{
		ID:        entry.ID,
		AlertID:   entry.AlertID.Int64(),
		RequestID: entry.RequestID.Int64(),
		Payload:   entry.Payload,
		Attempts:  entry.Attempts,
		CreatedAt: entry.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit unpublished entries, oldest first.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxEntry, error) {
	var dtos []OutboxEntryDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]ports.OutboxEntry, 0, len(dtos))
	for _, dto := range dtos {
		alertID, err := kernel.NewAlertID(dto.AlertID)
		if err != nil {
			return nil, err
		}
		requestID, err := kernel.NewRequestID(dto.RequestID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ports.OutboxEntry{
			ID:        dto.ID,
			AlertID:   alertID,
			RequestID: requestID,
			Payload:   dto.Payload,
			Attempts:  dto.Attempts,
			CreatedAt: dto.CreatedAt,
		})
	}
	return entries, nil
}

// MarkPublished removes a delivered entry from the pending set.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&OutboxEntryDTO{}, "id = ?", id).Error
}

// MarkFailed increments the attempt counter of an undeliverable entry.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&OutboxEntryDTO{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}
