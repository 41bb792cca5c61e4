// Package userrepo stores operator accounts and revoked token ids for the
// auth service.
package userrepo

import (
	"time"

	"tms/internal/auth"
	"tms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmailIndex is the unique index on users.email.
const EmailIndex = "idx_users_email"

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

// RevokedTokenDTO is a signed out token id, kept until the token expires.
type RevokedTokenDTO struct {
	JTI       string    `gorm:"column:jti;type:varchar(64);primaryKey"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (RevokedTokenDTO) TableName() string {
	return "revoked_tokens"
}

func toUser(dto UserDTO) (auth.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return auth.User{}, err
	}
	return auth.User{
		ID:           id,
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}, nil
}
