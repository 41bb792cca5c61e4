package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

var (
	// ErrInvalidCredentials is returned by Authenticate for an unknown e-mail
	// or a wrong password. Both cases look the same to the caller.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)

	// ErrTokenRevoked is returned by Verify for a signed out token.
	ErrTokenRevoked = fmt.Errorf("%w: token revoked", errs.ErrUnauthenticated)
)

// dummyHash is compared against when the e-mail is unknown so both failure
// paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z1Jrj5jgZLuWHfDVVVvJ6Xn2"

// Service signs operators in and out and resolves bearer tokens.
type Service struct {
	users       UserStore
	revocations RevocationStore
	tokens      *TokenIssuer
	validate    *validator.Validate
	log         logrus.FieldLogger
	now         func() time.Time
}

func NewService(users UserStore, revocations RevocationStore, tokens *TokenIssuer, log logrus.FieldLogger) *Service {
	if log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		log = discard
	}
	return &Service{
		users:       users,
		revocations: revocations,
		tokens:      tokens,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		log:         log.WithField("component", "auth"),
		now:         time.Now,
	}
}

// Authenticate checks the credentials and issues a token.
// A malformed payload yields an *errs.ValidationError, bad credentials
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)

	verr := errs.NewValidationError()
	switch {
	case email == "":
		verr.Add(FieldEmail, kernel.RequiredMessage(FieldEmail))
	case s.validate.Var(email, "email") != nil:
		verr.Add(FieldEmail, "The email field must be a valid email address.")
	}
	if password == "" {
		verr.Add(FieldPassword, kernel.RequiredMessage(FieldPassword))
	}
	if err := verr.ErrorOrNil(); err != nil {
		return Session{}, err
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return Session{}, err
		}
		CheckPassword(dummyHash, password)
		s.log.WithField("email", email).Info("sign in rejected: unknown email")
		return Session{}, ErrInvalidCredentials
	}

	if !CheckPassword(u.PasswordHash, password) {
		s.log.WithField("user_id", u.ID.String()).Info("sign in rejected: wrong password")
		return Session{}, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(u)
	if err != nil {
		return Session{}, err
	}

	s.log.WithFields(logrus.Fields{"user_id": u.ID.String(), "jti": claims.ID}).Info("signed in")
	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: u}, nil
}

// Verify resolves a raw bearer token to its principal. Any failure wraps
// errs.ErrUnauthenticated except store errors, which are returned as is.
func (s *Service) Verify(ctx context.Context, raw string) (Principal, error) {
	if raw == "" {
		return Principal{}, errs.ErrUnauthenticated
	}

	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return Principal{}, err
	}
	if revoked {
		return Principal{}, ErrTokenRevoked
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Principal{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
		}
		return Principal{}, err
	}

	return Principal{User: u, TokenID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Revoke signs p out. The token id is kept until the token expires.
func (s *Service) Revoke(ctx context.Context, p Principal) error {
	if p.TokenID == "" {
		return errs.ErrUnauthenticated
	}
	if err := s.revocations.Revoke(ctx, p.TokenID, p.ExpiresAt); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"user_id": p.User.ID.String(), "jti": p.TokenID}).Info("signed out")
	return nil
}

// PurgeRevoked drops revocations of tokens that have expired.
func (s *Service) PurgeRevoked(ctx context.Context) (int64, error) {
	return s.revocations.PurgeExpired(ctx, s.now())
}
