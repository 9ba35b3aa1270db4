// Package requestrepo persists request aggregates. It maps the aggregate to
// its row representation and applies optimistic concurrency on the row
// version.
package requestrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/request"
)

// RequestDTO is the database row for a request aggregate.
type RequestDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement:false"`
	CustomerID    int64     `gorm:"not null;index"`
	PointPersonID int64     `gorm:"not null"`
	Status        string    `gorm:"type:varchar(32);not null"`
	RequestDate   time.Time `gorm:"not null"`
	Version       int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "requests".
func (RequestDTO) TableName() string {
	return "requests"
}

func fromDomain(aggregate *request.Request) RequestDTO {
	return RequestDTO{
		ID:            aggregate.ID().Int64(),
		CustomerID:    aggregate.CustomerID().Int64(),
		PointPersonID: aggregate.PointPersonID().Int64(),
		Status:        aggregate.Status().String(),
		RequestDate:   aggregate.RequestDate(),
		Version:       aggregate.Version(),
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.NewRequestID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.NewUserID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	pointPersonID, err := kernel.NewUserID(dto.PointPersonID)
	if err != nil {
		return nil, err
	}
	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(id, customerID, pointPersonID, status, dto.RequestDate, dto.Version)
}
