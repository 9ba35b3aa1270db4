// Package idseq allocates numeric identifiers from a sequences table. Each
// entity kind has one row; allocation is an atomic upsert, so two concurrent
// transactions never receive the same value.
package idseq

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// SequenceDTO is one counter row, keyed by entity kind.
type SequenceDTO struct {
	Kind  string `gorm:"primaryKey;type:varchar(32)"`
	Value int64  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "sequences".
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormIdentifierAllocator implements IdentifierAllocator using GORM.
type GormIdentifierAllocator struct {
	db *gorm.DB
}

// NewGormIdentifierAllocator creates a new GORM identifier allocator.
func NewGormIdentifierAllocator(db *gorm.DB) *GormIdentifierAllocator {
	return &GormIdentifierAllocator{db: db}
}

// Next reserves the next identifier of the given kind. The first allocation
// of a kind returns its seed; the upsert row-locks the counter, so a
// concurrent caller of the same kind blocks until this transaction settles.
func (a *GormIdentifierAllocator) Next(ctx context.Context, kind kernel.EntityKind) (int64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	var value int64
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (kind, value)
		VALUES (?, ?)
		ON CONFLICT (kind) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`, kind.String(), kind.Seed()).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
