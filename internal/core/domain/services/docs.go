// Package services contains stateless domain services that operate across
// aggregates: the cascade planner deriving child transitions from a root
// transition, and the reservation ledger computing per-item availability.
package services
