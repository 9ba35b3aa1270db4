package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrObjectNotFound         = errors.New("object not found")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrUnauthorized           = errors.New("actor is not authorized")
	ErrInsufficientInventory  = errors.New("insufficient inventory")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrCascadeIncomplete      = errors.New("cascade incomplete")
)

// ValueIsRequiredError indicates a required input value was absent.
type ValueIsRequiredError struct {
	ParamName string
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func (e *ValueIsRequiredError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates an input value was malformed or out of range.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value with
// an underlying cause explaining what exactly is wrong with it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates an entity could not be resolved by its identifier.
type ObjectNotFoundError struct {
	ObjectName string
	ObjectID   string
}

// NewObjectNotFoundError creates an error for an unresolved entity.
func NewObjectNotFoundError(objectName string, objectID string) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectName: objectName, ObjectID: objectID}
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ObjectName, e.ObjectID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates a requested status is not reachable from the
// entity's current status per its transition table.
type InvalidTransitionError struct {
	EntityName string
	From       string
	To         string
}

// NewInvalidTransitionError creates an error for an unreachable status transition.
func NewInvalidTransitionError(entityName, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{EntityName: entityName, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot go from %s to %s", ErrInvalidTransition, e.EntityName, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthorizedError indicates the acting party lacks the capability required
// for the attempted operation.
type UnauthorizedError struct {
	Actor  string
	Action string
}

// NewUnauthorizedError creates an error for a capability mismatch.
func NewUnauthorizedError(actor, action string) *UnauthorizedError {
	return &UnauthorizedError{Actor: actor, Action: action}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrUnauthorized, e.Actor, e.Action)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InsufficientInventoryError indicates a reservation would push the reserved
// quantity of an item above its on-hand stock.
type InsufficientInventoryError struct {
	ItemID    int64
	Requested int
	Available int
}

// NewInsufficientInventoryError creates an error for an overcommitting reservation.
func NewInsufficientInventoryError(itemID int64, requested, available int) *InsufficientInventoryError {
	return &InsufficientInventoryError{ItemID: itemID, Requested: requested, Available: available}
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s: item %d has %d available, %d requested",
		ErrInsufficientInventory, e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// ConcurrentModificationError indicates an optimistic-lock conflict: the entity
// row changed between read and write. Callers retry a bounded number of times
// before surfacing this error.
type ConcurrentModificationError struct {
	EntityName string
	EntityID   string
}

// NewConcurrentModificationError creates an error for an optimistic-lock conflict.
func NewConcurrentModificationError(entityName, entityID string) *ConcurrentModificationError {
	return &ConcurrentModificationError{EntityName: entityName, EntityID: entityID}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConcurrentModification, e.EntityName, e.EntityID)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// CascadeIncompleteError indicates a cascaded sub-step of a root transition
// failed after retries. Completed and Pending name the sub-steps so the caller
// can decide whether to retry the whole operation; cascades are idempotent on
// re-application.
type CascadeIncompleteError struct {
	Completed []string
	Pending   []string
	Cause     error
}

// NewCascadeIncompleteError creates an error describing a partially executed cascade.
func NewCascadeIncompleteError(completed, pending []string, cause error) *CascadeIncompleteError {
	return &CascadeIncompleteError{Completed: completed, Pending: pending, Cause: cause}
}

func (e *CascadeIncompleteError) Error() string {
	return fmt.Sprintf("%s: completed [%s], pending [%s]: %v",
		ErrCascadeIncomplete,
		strings.Join(e.Completed, ", "),
		strings.Join(e.Pending, ", "),
		e.Cause)
}

func (e *CascadeIncompleteError) Unwrap() error {
	return ErrCascadeIncomplete
}
