// Package item contains the catalog entry whose stock backs the inventory
// reservation ledger. Stock grows only through procurement receipt and is
// never mutated by the order paths; reservations are computed, not stored.
package item

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a catalog entry with its total on-hand quantity.
type Item struct {
	id      kernel.ItemID
	name    string
	price   float64
	stock   int
	version int

	isConstructed bool
}

// NewItem creates a catalog entry.
func NewItem(id kernel.ItemID, name string, price float64, stock int) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("itemName")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("itemPrice",
			fmt.Errorf("%f is negative", price))
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("itemStock",
			fmt.Errorf("%d is negative", stock))
	}

	return &Item{
		id:            id,
		name:          name,
		price:         price,
		stock:         stock,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a catalog entry from persistence.
func RestoreItem(id kernel.ItemID, name string, price float64, stock int, version int) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		name:          name,
		price:         price,
		stock:         stock,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier.
func (i *Item) ID() kernel.ItemID { return i.id }

// Name returns the catalog name.
func (i *Item) Name() string { return i.name }

// Price returns the unit price.
func (i *Item) Price() float64 { return i.price }

// Stock returns the total on-hand quantity.
func (i *Item) Stock() int { return i.stock }

// Version returns the persistence row version for optimistic concurrency.
func (i *Item) Version() int { return i.version }

// AddStock increases on-hand stock by the accepted quantity of a completed
// procurement shipment.
func (i *Item) AddStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	i.stock += quantity
	return nil
}
