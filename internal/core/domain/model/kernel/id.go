package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// EntityKind identifies which per-kind identifier sequence an ID belongs to.
type EntityKind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind EntityKind = iota
	UserKind
	ItemKind
	RequestKind
	OrderKind
	ProcurementKind
	ReviewKind
	MessageKind
	AlertKind
)

func getKindStrings() map[EntityKind]string {
	return map[EntityKind]string{
		UnknownKind:     "Unknown",
		UserKind:        "User",
		ItemKind:        "Item",
		RequestKind:     "Request",
		OrderKind:       "Order",
		ProcurementKind: "Procurement",
		ReviewKind:      "Review",
		MessageKind:     "Message",
		AlertKind:       "Alert",
	}
}

func getKindSeeds() map[EntityKind]int64 {
	return map[EntityKind]int64{
		UserKind:        10001,
		ItemKind:        20001,
		RequestKind:     30001,
		OrderKind:       40001,
		ProcurementKind: 50001,
		ReviewKind:      60001,
		MessageKind:     70001,
		AlertKind:       90001,
	}
}

// String returns the human-readable name of the kind.
func (k EntityKind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Seed returns the first identifier issued for this kind.
func (k EntityKind) Seed() int64 {
	return getKindSeeds()[k]
}

// Validate checks that the kind is one of the defined sequences.
func (k EntityKind) Validate() error {
	if _, ok := getKindSeeds()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("entity kind",
			fmt.Errorf("%d is not a valid entity kind", int(k)))
	}
	return nil
}

func validateID(kind EntityKind, v int64) error {
	if v < kind.Seed() {
		return errs.NewValueIsInvalidErrorWithCause(kind.String()+" id",
			fmt.Errorf("%d is below the %s sequence seed %d", v, kind, kind.Seed()))
	}
	return nil
}

// UserID identifies a user (customer or sales representative).
type UserID int64

// ItemID identifies a catalog item.
type ItemID int64

// RequestID identifies a customer request.
type RequestID int64

// OrderID identifies an order under a request.
type OrderID int64

// ProcurementID identifies an incoming procurement shipment.
type ProcurementID int64

// MessageID identifies a chat message.
type MessageID int64

// AlertID identifies an alert record.
type AlertID int64

// NewUserID validates and wraps a raw user identifier.
func NewUserID(v int64) (UserID, error) {
	if err := validateID(UserKind, v); err != nil {
		return 0, err
	}
	return UserID(v), nil
}

// NewItemID validates and wraps a raw item identifier.
func NewItemID(v int64) (ItemID, error) {
	if err := validateID(ItemKind, v); err != nil {
		return 0, err
	}
	return ItemID(v), nil
}

// NewRequestID validates and wraps a raw request identifier.
func NewRequestID(v int64) (RequestID, error) {
	if err := validateID(RequestKind, v); err != nil {
		return 0, err
	}
	return RequestID(v), nil
}

// NewOrderID validates and wraps a raw order identifier.
func NewOrderID(v int64) (OrderID, error) {
	if err := validateID(OrderKind, v); err != nil {
		return 0, err
	}
	return OrderID(v), nil
}

// NewProcurementID validates and wraps a raw procurement identifier.
func NewProcurementID(v int64) (ProcurementID, error) {
	if err := validateID(ProcurementKind, v); err != nil {
		return 0, err
	}
	return ProcurementID(v), nil
}

// NewMessageID validates and wraps a raw message identifier.
func NewMessageID(v int64) (MessageID, error) {
	if err := validateID(MessageKind, v); err != nil {
		return 0, err
	}
	return MessageID(v), nil
}

// NewAlertID validates and wraps a raw alert identifier.
func NewAlertID(v int64) (AlertID, error) {
	if err := validateID(AlertKind, v); err != nil {
		return 0, err
	}
	return AlertID(v), nil
}

// Validate checks the identifier against its kind's seed.
func (id UserID) Validate() error { return validateID(UserKind, int64(id)) }

// Validate checks the identifier against its kind's seed.
func (id ItemID) Validate() error { return validateID(ItemKind, int64(id)) }

// Validate checks the identifier against its kind's seed.
func (id RequestID) Validate() error { return validateID(RequestKind, int64(id)) }

// Validate checks the identifier against its kind's seed.
func (id OrderID) Validate() error { return validateID(OrderKind, int64(id)) }

// Validate checks the identifier against its kind's seed.
func (id ProcurementID) Validate() error { return validateID(ProcurementKind, int64(id)) }

// Validate checks the identifier against its kind's seed.
func (id MessageID) Validate() error { return validateID(MessageKind, int64(id)) }

// Validate checks the identifier against its kind's seed.
func (id AlertID) Validate() error { return validateID(AlertKind, int64(id)) }

// Int64 returns the raw identifier value.
func (id UserID) Int64() int64 { return int64(id) }

// Int64 returns the raw identifier value.
func (id ItemID) Int64() int64 { return int64(id) }

// Int64 returns the raw identifier value.
func (id RequestID) Int64() int64 { return int64(id) }

// Int64 returns the raw identifier value.
func (id OrderID) Int64() int64 { return int64(id) }

// Int64 returns the raw identifier value.
func (id ProcurementID) Int64() int64 { return int64(id) }

// Int64 returns the raw identifier value.
func (id MessageID) Int64() int64 { return int64(id) }

// Int64 returns the raw identifier value.
func (id AlertID) Int64() int64 { return int64(id) }

// String returns the decimal form of the identifier.
func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }

// String returns the decimal form of the identifier.
func (id ItemID) String() string { return strconv.FormatInt(int64(id), 10) }

// String returns the decimal form of the identifier.
func (id RequestID) String() string { return strconv.FormatInt(int64(id), 10) }

// String returns the decimal form of the identifier.
func (id OrderID) String() string { return strconv.FormatInt(int64(id), 10) }

// String returns the decimal form of the identifier.
func (id ProcurementID) String() string { return strconv.FormatInt(int64(id), 10) }

// String returns the decimal form of the identifier.
func (id MessageID) String() string { return strconv.FormatInt(int64(id), 10) }

// String returns the decimal form of the identifier.
func (id AlertID) String() string { return strconv.FormatInt(int64(id), 10) }
