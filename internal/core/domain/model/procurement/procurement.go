// Package procurement contains the incoming-shipment aggregate and its
// reconciliation state machine, including the accepted/discarded split
// recorded at completion time.
package procurement

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProcurementIsNotConstructed is returned when a Procurement instance was
// not created through NewProcurement or RestoreProcurement.
var ErrProcurementIsNotConstructed = errors.New("Procurement must be created via NewProcurement or RestoreProcurement")

// BookedItem is one item line of the shipment as booked, by name and quantity.
type BookedItem struct {
	Name     string
	Quantity int
}

// Validate checks the booked line.
func (b BookedItem) Validate() error {
	if b.Name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if b.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", b.Quantity))
	}
	return nil
}

// ReceivedItem is the reconciliation input for one booked item: how much of
// it was discarded on receipt and why.
type ReceivedItem struct {
	Name      string
	Discarded int
	Reason    string
}

// ItemCompletion is the recorded accepted/discarded split for one item.
type ItemCompletion struct {
	Name      string
	Accepted  int
	Discarded int
	Reason    string
}

// Procurement is an incoming shipment of raw stock from an agency or farm.
type Procurement struct {
	id          kernel.ProcurementID
	agencyID    kernel.UserID
	status      Status
	items       []BookedItem
	receiveDate time.Time
	completions []ItemCompletion
	completedAt time.Time
	version     int

	isConstructed bool
}

// NewProcurement creates a pending shipment with its booked item lines.
func NewProcurement(
	id kernel.ProcurementID,
	agencyID kernel.UserID,
	items []BookedItem,
	receiveDate time.Time,
) (*Procurement, error) {
	if err := errors.Join(id.Validate(), agencyID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Procurement{
		id:            id,
		agencyID:      agencyID,
		status:        Pending,
		items:         items,
		receiveDate:   receiveDate,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreProcurement reconstructs a shipment from persistence.
func RestoreProcurement(
	id kernel.ProcurementID,
	agencyID kernel.UserID,
	status Status,
	items []BookedItem,
	receiveDate time.Time,
	completions []ItemCompletion,
	completedAt time.Time,
	version int,
) (*Procurement, error) {
	if err := errors.Join(id.Validate(), agencyID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Procurement{
		id:            id,
		agencyID:      agencyID,
		status:        status,
		items:         items,
		receiveDate:   receiveDate,
		completions:   completions,
		completedAt:   completedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (p *Procurement) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProcurementIsNotConstructed
	}
	return nil
}

// ID returns the shipment's identifier.
func (p *Procurement) ID() kernel.ProcurementID { return p.id }

// AgencyID returns the booked delivery agency, zero until booked.
func (p *Procurement) AgencyID() kernel.UserID { return p.agencyID }

// Status returns the current status.
func (p *Procurement) Status() Status { return p.status }

// Items returns the booked item lines.
func (p *Procurement) Items() []BookedItem { return p.items }

// ReceiveDate returns the expected receipt date.
func (p *Procurement) ReceiveDate() time.Time { return p.receiveDate }

// Completions returns the per-item accepted/discarded splits, empty until
// the shipment is completed.
func (p *Procurement) Completions() []ItemCompletion { return p.completions }

// CompletedAt returns when the shipment was reconciled, zero until completed.
func (p *Procurement) CompletedAt() time.Time { return p.completedAt }

// Version returns the persistence row version for optimistic concurrency.
func (p *Procurement) Version() int { return p.version }

// Book attaches a delivery agency and moves the shipment to Booked.
func (p *Procurement) Book(agencyID kernel.UserID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	if p.status == Booked && p.agencyID == agencyID {
		return nil
	}
	if !p.status.CanTransitionTo(Booked) {
		return errs.NewInvalidTransitionError("procurement", p.status.String(), Booked.String())
	}

	p.agencyID = agencyID
	p.status = Booked
	return nil
}

// Cancel moves the shipment to Cancelled. Idempotent when already cancelled.
func (p *Procurement) Cancel() error {
	if p.status == Cancelled {
		return nil
	}
	if !p.status.CanTransitionTo(Cancelled) {
		return errs.NewInvalidTransitionError("procurement", p.status.String(), Cancelled.String())
	}

	p.status = Cancelled
	return nil
}

// Complete reconciles the shipment and moves it to Completed.
//
// Every received entry must name a booked item and carry a discarded quantity
// within [0, booked]; booked items without a received entry are accepted in
// full. The split is recorded for every item or not at all: validation runs
// before any state changes, so a rejected completion leaves the shipment
// untouched.
func (p *Procurement) Complete(received []ReceivedItem, completedAt time.Time) error {
	if !p.status.CanTransitionTo(Completed) {
		return errs.NewInvalidTransitionError("procurement", p.status.String(), Completed.String())
	}
	if completedAt.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}

	booked := make(map[string]int, len(p.items))
	for _, item := range p.items {
		booked[item.Name] = item.Quantity
	}

	discards := make(map[string]ReceivedItem, len(received))
	for _, entry := range received {
		quantity, ok := booked[entry.Name]
		if !ok {
			return errs.NewValueIsInvalidErrorWithCause("receivedItems",
				fmt.Errorf("%q is not a booked item", entry.Name))
		}
		if entry.Discarded < 0 || entry.Discarded > quantity {
			return errs.NewValueIsInvalidErrorWithCause("receivedItems",
				fmt.Errorf("discarded %d for %q is outside [0, %d]", entry.Discarded, entry.Name, quantity))
		}
		discards[entry.Name] = entry
	}

	completions := make([]ItemCompletion, 0, len(p.items))
	for _, item := range p.items {
		entry := discards[item.Name]
		completions = append(completions, ItemCompletion{
			Name:      item.Name,
			Accepted:  item.Quantity - entry.Discarded,
			Discarded: entry.Discarded,
			Reason:    entry.Reason,
		})
	}

	p.completions = completions
	p.completedAt = completedAt
	p.status = Completed
	return nil
}
