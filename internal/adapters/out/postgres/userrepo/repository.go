package userrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"tms/internal/auth"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements auth.UserStore and auth.RevocationStore.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByEmail matches e-mails case-insensitively.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (auth.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "email = ?", normalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.User{}, errs.NewObjectNotFoundError("user", email)
		}
		return auth.User{}, err
	}
	return toUser(dto)
}

func (r *GormUserRepository) FindByID(ctx context.Context, id kernel.UUID) (auth.User, error) {
	if err := id.Validate(); err != nil {
		return auth.User{}, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return auth.User{}, err
	}
	return toUser(dto)
}

// EnsureUser creates the account unless the e-mail is already registered.
// An existing account is returned untouched, its password included.
func (r *GormUserRepository) EnsureUser(ctx context.Context, name, email, passwordHash string) (auth.User, bool, error) {
	dto := UserDTO{
		ID:           kernel.NewUUID().Bytes(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return auth.User{}, false, result.Error
	}

	u, err := r.FindByEmail(ctx, email)
	return u, result.RowsAffected > 0, err
}

// Revoke records a token id. Revoking twice is harmless.
func (r *GormUserRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	dto := RevokedTokenDTO{JTI: tokenID, ExpiresAt: expiresAt.UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

func (r *GormUserRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RevokedTokenDTO{}).Where("jti = ?", tokenID).Count(&count).Error
	return count > 0, err
}

// PurgeExpired deletes revocations whose token expired before now and
// returns how many were removed.
func (r *GormUserRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", now.UTC()).Delete(&RevokedTokenDTO{})
	return result.RowsAffected, result.Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
