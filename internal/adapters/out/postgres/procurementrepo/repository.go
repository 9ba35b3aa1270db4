package procurementrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/procurement"
	"fulfillment/internal/pkg/errs"
)

// GormProcurementRepository implements ProcurementRepository using GORM.
type GormProcurementRepository struct {
	db *gorm.DB
}

// NewGormProcurementRepository creates a new GORM procurement repository.
func NewGormProcurementRepository(db *gorm.DB) *GormProcurementRepository {
	return &GormProcurementRepository{db: db}
}

// Add saves a new procurement and its booked items to the database.
func (r *GormProcurementRepository) Add(ctx context.Context, aggregate *procurement.Procurement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the procurement under its optimistic version. Completion rows
// are written alongside the status move; booked items never change.
func (r *GormProcurementRepository) Update(ctx context.Context, aggregate *procurement.Procurement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProcurementDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"agency_id":    dto.AgencyID,
			"status":       dto.Status,
			"completed_at": dto.CompletedAt,
			"version":      dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("procurement", aggregate.ID().String())
	}

	if len(dto.Completions) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Completions).Error; err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a procurement by ID.
func (r *GormProcurementRepository) Get(
	ctx context.Context, id kernel.ProcurementID,
) (*procurement.Procurement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProcurementDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Completions").
		First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("procurement", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
