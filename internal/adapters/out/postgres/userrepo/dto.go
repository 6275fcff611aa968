// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Permissions live in their own table and are loaded with
// the user row.
package userrepo

import (
	"github.com/google/uuid"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255"`
	Email        string    `gorm:"size:255;uniqueIndex"`
	PasswordHash string    `gorm:"size:255"`

	Permissions []UserPermissionDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// UserPermissionDTO represents one granted permission row.
type UserPermissionDTO struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Permission string    `gorm:"size:32;primaryKey"`
}

// TableName specifies the database table name for permission grants.
func (UserPermissionDTO) TableName() string {
	return "user_permissions"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	granted := aggregate.Permissions()
	permissions := make([]UserPermissionDTO, 0, len(granted))
	for _, p := range granted {
		permissions = append(permissions, UserPermissionDTO{
			UserID:     aggregate.ID().Bytes(),
			Permission: string(p),
		})
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Permissions:  permissions,
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	permissions := make([]user.Permission, 0, len(dto.Permissions))
	for _, p := range dto.Permissions {
		permission, parseErr := user.PermissionFromString(p.Permission)
		if parseErr != nil {
			return nil, parseErr
		}
		permissions = append(permissions, permission)
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, permissions)
}
