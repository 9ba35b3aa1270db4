// Package alertrepo persists alert records. The idempotency key carries a
// unique index, which is what makes retried cascade emissions collapse into
// one alert.
package alertrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/kernel"
)

// AlertDTO is the database row for an alert record.
type AlertDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement:false"`
	Category       string          `gorm:"type:varchar(64);not null"`
	Details        string          `gorm:"type:varchar(512);not null"`
	Orders         []AlertOrderDTO `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE"`
	CreatedByID    int64           `gorm:"not null"`
	DateCreated    time.Time       `gorm:"not null"`
	IdempotencyKey uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
}

// TableName overrides GORM's default naming to use "alerts".
func (AlertDTO) TableName() string {
	return "alerts"
}

// AlertOrderDTO links an alert to one implicated order.
type AlertOrderDTO struct {
	AlertID int64 `gorm:"primaryKey;autoIncrement:false"`
	OrderID int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName overrides GORM's default naming to use "alert_orders".
func (AlertOrderDTO) TableName() string {
	return "alert_orders"
}

func fromDomain(aggregate *alert.Alert) AlertDTO {
	alertID := aggregate.ID().Int64()
	orders := make([]AlertOrderDTO, 0, len(aggregate.Orders()))
	for _, orderID := range aggregate.Orders() {
		orders = append(orders, AlertOrderDTO{AlertID: alertID, OrderID: orderID.Int64()})
	}

	return AlertDTO{
		ID:             alertID,
		Category:       aggregate.Category().String(),
		Details:        aggregate.Details(),
		Orders:         orders,
		CreatedByID:    aggregate.CreatedByID().Int64(),
		DateCreated:    aggregate.DateCreated(),
		IdempotencyKey: aggregate.IdempotencyKey(),
	}
}

func toDomain(dto AlertDTO) (*alert.Alert, error) {
	id, err := kernel.NewAlertID(dto.ID)
	if err != nil {
		return nil, err
	}
	createdByID, err := kernel.NewUserID(dto.CreatedByID)
	if err != nil {
		return nil, err
	}

	orders := make([]kernel.OrderID, 0, len(dto.Orders))
	for _, line := range dto.Orders {
		orderID, orderErr := kernel.NewOrderID(line.OrderID)
		if orderErr != nil {
			return nil, orderErr
		}
		orders = append(orders, orderID)
	}

	return alert.RestoreAlert(
		id, alert.Category(dto.Category), dto.Details, orders,
		createdByID, dto.DateCreated, dto.IdempotencyKey)
}
