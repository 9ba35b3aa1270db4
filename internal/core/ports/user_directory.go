package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
)

// UserProfile is the directory's view of a user.
type UserProfile struct {
	ID             kernel.UserID
	Name           string
	Role           actor.Role
	RestaurantName string
}

// UserDirectory resolves user identities for capability checks and message
// phrasing. Authentication is outside the coordinator; callers arrive with an
// already-authenticated user ID.
type UserDirectory interface {
	Resolve(ctx context.Context, id kernel.UserID) (UserProfile, error)
}
