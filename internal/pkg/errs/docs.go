// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure category of the coordinator:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of range
//   - ObjectNotFoundError: an entity ID cannot be resolved
//   - InvalidTransitionError: a status is unreachable from the current state
//   - UnauthorizedError: the acting party lacks the needed capability
//   - InsufficientInventoryError: a reservation would exceed available stock
//   - ConcurrentModificationError: an optimistic-lock conflict on a per-entity write
//   - CascadeIncompleteError: a cascaded sub-step failed after retries
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
