package auth

import (
	"time"

	"tms/internal/core/domain/model/kernel"
)

// User is an operator account.
type User struct {
	ID           kernel.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated caller of a request.
type Principal struct {
	User      User
	TokenID   string
	ExpiresAt time.Time
}

// Session is the result of a successful sign in.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
