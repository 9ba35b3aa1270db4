package queries

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/order"
)

// GetAvailableInventoryQueryHandler computes per-item availability with one
// aggregation over items and the line items of active orders.
type GetAvailableInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableInventoryQueryHandler creates a handler for availability queries.
func NewGetAvailableInventoryQueryHandler(db *gorm.DB) GetAvailableInventoryQueryHandler {
	return GetAvailableInventoryQueryHandler{db: db}
}

// Handle executes the availability report. Items with nothing reserved report
// their full stock; availability never goes below zero even if reservations
// momentarily exceed stock.
func (h GetAvailableInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableInventoryQuery,
) ([]GetAvailableInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]GetAvailableInventoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.name,
			i.stock,
			COALESCE(SUM(oi.quantity), 0) AS reserved
		FROM items i
		LEFT JOIN order_items oi
			ON oi.item_id = i.id
			AND oi.order_id IN (SELECT id FROM orders WHERE status IN (?, ?))
		GROUP BY i.id, i.name, i.stock
		ORDER BY i.id
	`, order.WaitingApproval.String(), order.Preparing.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetAvailableInventoryQueryResponse
		if err = rows.Scan(&line.ItemID, &line.ItemName, &line.Total, &line.Reserved); err != nil {
			return nil, err
		}
		line.Available = line.Total - line.Reserved
		if line.Available < 0 {
			line.Available = 0
		}
		report = append(report, line)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
