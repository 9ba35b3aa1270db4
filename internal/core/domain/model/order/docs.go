// Package order contains the order aggregate and its status state machine.
// An order is one concrete delivery commitment with line items under a
// request; while active it contributes its quantities to the inventory
// reservation ledger.
package order
