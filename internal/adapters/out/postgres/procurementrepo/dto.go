// Package procurementrepo persists procurement shipments with their booked
// items and reconciliation results.
package procurementrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/procurement"
)

// ProcurementDTO is the database row for a procurement shipment.
type ProcurementDTO struct {
	ID          int64                      `gorm:"primaryKey;autoIncrement:false"`
	AgencyID    int64                      `gorm:"not null;index"`
	Status      string                     `gorm:"type:varchar(32);not null"`
	Items       []ProcurementItemDTO       `gorm:"foreignKey:ProcurementID;constraint:OnDelete:CASCADE"`
	Completions []ProcurementCompletionDTO `gorm:"foreignKey:ProcurementID;constraint:OnDelete:CASCADE"`
	ReceiveDate time.Time                  `gorm:"not null"`
	CompletedAt time.Time
	Version     int `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "procurements".
func (ProcurementDTO) TableName() string {
	return "procurements"
}

// ProcurementItemDTO is one booked line of a procurement.
type ProcurementItemDTO struct {
	ProcurementID int64  `gorm:"primaryKey;autoIncrement:false"`
	Name          string `gorm:"primaryKey;type:varchar(255)"`
	Quantity      int    `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "procurement_items".
func (ProcurementItemDTO) TableName() string {
	return "procurement_items"
}

// ProcurementCompletionDTO is one reconciled line of a completed procurement.
type ProcurementCompletionDTO struct {
	ProcurementID int64  `gorm:"primaryKey;autoIncrement:false"`
	Name          string `gorm:"primaryKey;type:varchar(255)"`
	Accepted      int    `gorm:"not null"`
	Discarded     int    `gorm:"not null"`
	Reason        string `gorm:"type:varchar(512)"`
}

// TableName overrides GORM's default naming to use "procurement_completions".
func (ProcurementCompletionDTO) TableName() string {
	return "procurement_completions"
}

func fromDomain(aggregate *procurement.Procurement) ProcurementDTO {
	procurementID := aggregate.ID().Int64()

	items := make([]ProcurementItemDTO, 0, len(aggregate.Items()))
	for _, booked := range aggregate.Items() {
		items = append(items, ProcurementItemDTO{
			ProcurementID: procurementID,
			Name:          booked.Name,
			Quantity:      booked.Quantity,
		})
	}

	completions := make([]ProcurementCompletionDTO, 0, len(aggregate.Completions()))
	for _, completion := range aggregate.Completions() {
		completions = append(completions, ProcurementCompletionDTO{
			ProcurementID: procurementID,
			Name:          completion.Name,
			Accepted:      completion.Accepted,
			Discarded:     completion.Discarded,
			Reason:        completion.Reason,
		})
	}

	return ProcurementDTO{
		ID:          procurementID,
		AgencyID:    aggregate.AgencyID().Int64(),
		Status:      aggregate.Status().String(),
		Items:       items,
		Completions: completions,
		ReceiveDate: aggregate.ReceiveDate(),
		CompletedAt: aggregate.CompletedAt(),
		Version:     aggregate.Version(),
	}
}

func toDomain(dto ProcurementDTO) (*procurement.Procurement, error) {
	id, err := kernel.NewProcurementID(dto.ID)
	if err != nil {
		return nil, err
	}
	agencyID, err := kernel.NewUserID(dto.AgencyID)
	if err != nil {
		return nil, err
	}
	status, err := procurement.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]procurement.BookedItem, 0, len(dto.Items))
	for _, line := range dto.Items {
		items = append(items, procurement.BookedItem{Name: line.Name, Quantity: line.Quantity})
	}

	completions := make([]procurement.ItemCompletion, 0, len(dto.Completions))
	for _, line := range dto.Completions {
		completions = append(completions, procurement.ItemCompletion{
			Name:      line.Name,
			Accepted:  line.Accepted,
			Discarded: line.Discarded,
			Reason:    line.Reason,
		})
	}

	return procurement.RestoreProcurement(
		id, agencyID, status, items, dto.ReceiveDate, completions, dto.CompletedAt, dto.Version)
}
