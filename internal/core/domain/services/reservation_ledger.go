package services

import (
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ReservationLedger computes per-item availability from in-flight orders.
// Nothing is persisted: reserved quantity is derived on demand as the sum of
// line-item quantities across orders in an active status. The write paths
// must not rely on these reads alone; check-and-reserve runs under the item
// row's optimistic version instead.
type ReservationLedger struct{}

// NewReservationLedger creates a ledger.
func NewReservationLedger() ReservationLedger {
	return ReservationLedger{}
}

// Reserved sums the quantities of the given item across the active orders in
// the provided set. Inactive orders contribute nothing.
func (ReservationLedger) Reserved(itemID kernel.ItemID, orders []*order.Order) int {
	reserved := 0
	for _, o := range orders {
		if !o.IsActive() {
			continue
		}
		reserved += o.QuantityOf(itemID)
	}
	return reserved
}

// Available computes max(0, stock − reserved) for the item against the
// provided order set.
func (l ReservationLedger) Available(it *item.Item, orders []*order.Order) int {
	available := it.Stock() - l.Reserved(it.ID(), orders)
	if available < 0 {
		return 0
	}
	return available
}
