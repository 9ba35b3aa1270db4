// Package itemrepo persists catalog items. Item rows carry the optimistic
// version the checkout path touches to serialize concurrent reservations.
package itemrepo

import (
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
)

// ItemDTO is the database row for a catalog item.
type ItemDTO struct {
	ID      int64   `gorm:"primaryKey;autoIncrement:false"`
	Name    string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price   float64 `gorm:"not null"`
	Stock   int     `gorm:"not null"`
	Version int     `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:      aggregate.ID().Int64(),
		Name:    aggregate.Name(),
		Price:   aggregate.Price(),
		Stock:   aggregate.Stock(),
		Version: aggregate.Version(),
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.NewItemID(dto.ID)
	if err != nil {
		return nil, err
	}
	return item.RestoreItem(id, dto.Name, dto.Price, dto.Stock, dto.Version)
}
