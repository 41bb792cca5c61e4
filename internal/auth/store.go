package auth

import (
	"context"
	"time"

	"tms/internal/core/domain/model/kernel"
)

// UserStore looks up operator accounts. Both lookups return an
// *errs.ObjectNotFoundError for unknown users.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id kernel.UUID) (User, error)
}

// RevocationStore keeps the ids of signed out tokens until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
