// Package userrepo resolves user identities from the users table. The
// coordinator never writes users; accounts are provisioned outside it.
package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// UserDTO is the database row for a user account.
type UserDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement:false"`
	Name           string `gorm:"type:varchar(255);not null"`
	Role           string `gorm:"type:varchar(32);not null"`
	RestaurantName string `gorm:"type:varchar(255)"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements UserDirectory using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// Resolve retrieves the profile of a user.
func (d *GormUserDirectory) Resolve(ctx context.Context, id kernel.UserID) (ports.UserProfile, error) {
	if err := id.Validate(); err != nil {
		return ports.UserProfile{}, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserProfile{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return ports.UserProfile{}, err
	}

	userID, err := kernel.NewUserID(dto.ID)
	if err != nil {
		return ports.UserProfile{}, err
	}
	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return ports.UserProfile{}, err
	}

	return ports.UserProfile{
		ID:             userID,
		Name:           dto.Name,
		Role:           role,
		RestaurantName: dto.RestaurantName,
	}, nil
}
