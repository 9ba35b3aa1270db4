package alertrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GormAlertRepository implements AlertRepository using GORM.
type GormAlertRepository struct {
	db *gorm.DB
}

// NewGormAlertRepository creates a new GORM alert repository.
func NewGormAlertRepository(db *gorm.DB) *GormAlertRepository {
	return &GormAlertRepository{db: db}
}

// Add saves a new alert and its order links to the database.
func (r *GormAlertRepository) Add(ctx context.Context, aggregate *alert.Alert) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an alert by ID.
func (r *GormAlertRepository) Get(ctx context.Context, id kernel.AlertID) (*alert.Alert, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AlertDTO
	if err := r.db.WithContext(ctx).Preload("Orders").First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("alert", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an alert; its order links go with it.
func (r *GormAlertRepository) Delete(ctx context.Context, id kernel.AlertID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("alert_id = ?", id.Int64()).
		Delete(&AlertOrderDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AlertDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("alert", id.String())
	}
	return nil
}

// GetByIdempotencyKey resolves the alert emitted under a root-transition key.
func (r *GormAlertRepository) GetByIdempotencyKey(
	ctx context.Context, key uuid.UUID,
) (*alert.Alert, error) {
	var dto AlertDTO
	if err := r.db.WithContext(ctx).
		Preload("Orders").
		First(&dto, "idempotency_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("alert", key.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
