// Package userrepo implements the read-only user repository over GORM.
// Account management lives in another service; this service only resolves
// owners and actors.
package userrepo

import (
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
)

// UserDTO represents the database structure for user accounts. Role is stored
// as its string name.
type UserDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"uniqueIndex;not null"`
	Role  string `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.ID, dto.Name, dto.Email, role)
}
