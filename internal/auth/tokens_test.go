package auth_test

import (
	"testing"
	"time"

	"tms/internal/auth"
	"tms/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() auth.User {
	return auth.User{
		ID:    kernel.NewUUID(),
		Name:  "Admin",
		Email: "admin@example.com",
	}
}

func TestNewTokenIssuer_RejectsBadConfig(t *testing.T) {
	_, err := auth.NewTokenIssuer("", time.Hour)
	require.ErrorIs(t, err, auth.ErrSecretIsRequired)

	_, err = auth.NewTokenIssuer("secret", 0)
	require.ErrorIs(t, err, auth.ErrTTLIsInvalid)
}

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)
	u := testUser()

	raw, claims, err := issuer.Issue(u)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	parsed, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), parsed.Subject)
	assert.Equal(t, u.Email, parsed.Email)
	assert.Equal(t, u.Name, parsed.Name)
	assert.Equal(t, auth.Issuer, parsed.Issuer)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt.Time, 5*time.Second)
}

func TestTokenIssuer_EveryTokenHasItsOwnID(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)
	u := testUser()

	_, first, err := issuer.Issue(u)
	require.NoError(t, err)
	_, second, err := issuer.Issue(u)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestTokenIssuer_ParseRejectsForeignSignature(t *testing.T) {
	ours, err := auth.NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)
	theirs, err := auth.NewTokenIssuer("other-secret", time.Hour)
	require.NoError(t, err)

	raw, _, err := theirs.Issue(testUser())
	require.NoError(t, err)

	_, err = ours.Parse(raw)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestTokenIssuer_ParseRejectsExpired(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    auth.Issuer,
			Subject:   kernel.NewUUID().String(),
			ID:        kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenIssuer_ParseRejectsOtherAlgorithms(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    auth.Issuer,
			Subject:   kernel.NewUUID().String(),
			ID:        kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestTokenIssuer_ParseRejectsMissingTokenID(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    auth.Issuer,
			Subject:   kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
}

func TestTokenIssuer_ParseRejectsGarbage(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Parse("not.a.token")
	require.Error(t, err)
}
