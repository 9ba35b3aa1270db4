package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// IdentifierAllocator issues strictly increasing numeric identifiers per
// entity kind. Allocation is safe under concurrency: two concurrent callers
// never observe the same value for the same kind.
type IdentifierAllocator interface {
	// Next reserves and returns the next identifier of the given kind,
	// starting at the kind's seed when the sequence is empty.
	Next(ctx context.Context, kind kernel.EntityKind) (int64, error)
}
