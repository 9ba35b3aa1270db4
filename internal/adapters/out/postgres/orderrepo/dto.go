// Package orderrepo persists order aggregates and their derived delivery
// records. Line items live in an association table so the inventory read
// path can aggregate them in SQL.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order aggregate.
type OrderDTO struct {
	ID                int64          `gorm:"primaryKey;autoIncrement:false"`
	RequestID         int64          `gorm:"not null;index"`
	Status            string         `gorm:"type:varchar(32);not null;index"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DeliveryDate      time.Time      `gorm:"not null"`
	DeliveryAddress   string         `gorm:"type:varchar(512);not null"`
	DeliveryTimeRange string         `gorm:"type:varchar(64)"`
	Customizations    string         `gorm:"type:text"`
	PaymentMethod     string         `gorm:"type:varchar(64)"`
	Version           int            `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item row of an order.
type OrderItemDTO struct {
	OrderID  int64 `gorm:"primaryKey;autoIncrement:false"`
	ItemID   int64 `gorm:"primaryKey;autoIncrement:false;index"`
	Quantity int   `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryDTO is the dispatch record row, keyed by order.
type DeliveryDTO struct {
	OrderID       int64     `gorm:"primaryKey;autoIncrement:false"`
	RequestID     int64     `gorm:"not null;index"`
	Weight        float64   `gorm:"not null"`
	Status        string    `gorm:"type:varchar(32);not null"`
	PaymentStatus string    `gorm:"type:varchar(32);not null"`
	DeliverBy     time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Int64()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, line := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:  orderID,
			ItemID:   line.ItemID.Int64(),
			Quantity: line.Quantity,
		})
	}

	return OrderDTO{
		ID:                orderID,
		RequestID:         aggregate.RequestID().Int64(),
		Status:            aggregate.Status().String(),
		Items:             items,
		DeliveryDate:      aggregate.DeliveryDate(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		DeliveryTimeRange: aggregate.DeliveryTimeRange(),
		Customizations:    aggregate.Customizations(),
		PaymentMethod:     aggregate.PaymentMethod(),
		Version:           aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.NewRequestID(dto.RequestID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, line := range dto.Items {
		itemID, itemErr := kernel.NewItemID(line.ItemID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, order.LineItem{ItemID: itemID, Quantity: line.Quantity})
	}

	return order.RestoreOrder(
		id,
		requestID,
		status,
		items,
		dto.DeliveryDate,
		dto.DeliveryAddress,
		dto.DeliveryTimeRange,
		dto.Customizations,
		dto.PaymentMethod,
		dto.Version,
	)
}

func deliveryFromDomain(record *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		OrderID:       record.OrderID().Int64(),
		RequestID:     record.RequestID().Int64(),
		Weight:        record.Weight(),
		Status:        record.Status().String(),
		PaymentStatus: record.PaymentStatus().String(),
		DeliverBy:     record.DeliverBy(),
	}
}

func deliveryToDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	orderID, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.NewRequestID(dto.RequestID)
	if err != nil {
		return nil, err
	}
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := delivery.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(orderID, requestID, dto.Weight, status, paymentStatus, dto.DeliverBy)
}
