package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "tms/internal/adapters/in/http"
	"tms/internal/auth"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/generated/servers"
	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) Authenticate(ctx context.Context, email, password string) (auth.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(auth.Session), args.Error(1)
}

func (m *MockAuth) Revoke(ctx context.Context, p auth.Principal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAuth) Verify(ctx context.Context, raw string) (auth.Principal, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(auth.Principal), args.Error(1)
}

func newTestEcho(t *testing.T, a *MockAuth) *echo.Echo {
	t.Helper()
	log, _ := test.NewNullLogger()

	e := echo.New()
	e.HTTPErrorHandler = httpin.ErrorHandler(log)
	server := httpin.NewServer(a, httpin.CommandHandlers{}, httpin.QueryHandlers{})
	require.NoError(t, httpin.Register(t.Context(), e, server, a))
	return e
}

func operator() auth.User {
	return auth.User{ID: kernel.NewUUID(), Name: "Administrador", Email: "admin@tms.local"}
}

func serve(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_PublicRoutes(t *testing.T) {
	a := &MockAuth{}
	e := newTestEcho(t, a)

	rec := serve(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = serve(e, http.MethodGet, "/api/v1/openapi.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	rec = serve(e, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/transport-orders/{id}/advance")

	a.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestRegister_RequiresToken(t *testing.T) {
	a := &MockAuth{}
	e := newTestEcho(t, a)

	for _, target := range []string{"/api/v1/me", "/api/v1/drivers", "/api/v1/transport-orders", "/api/v1/dashboard"} {
		rec := serve(e, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.JSONEq(t, `{"message":"Unauthenticated."}`, rec.Body.String(), target)
	}
}

func TestLogin(t *testing.T) {
	a := &MockAuth{}
	e := newTestEcho(t, a)
	user := operator()
	expires := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)

	a.On("Authenticate", mock.Anything, "admin@tms.local", "password").
		Return(auth.Session{Token: "jwt", ExpiresAt: expires, User: user}, nil)

	rec := serve(e, http.MethodPost, "/api/v1/login", `{"email":"admin@tms.local","password":"password"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var session servers.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "jwt", session.Token)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.True(t, expires.Equal(session.ExpiresAt))
	assert.Equal(t, user.ID.String(), session.User.Id.String())
	assert.Equal(t, "admin@tms.local", session.User.Email)
}

func TestLogin_Failures(t *testing.T) {
	verr := errs.NewFieldError("email", "The email field is required.")

	tests := []struct {
		name     string
		body     string
		authErr  error
		wantCode int
	}{
		{name: "wrong password", body: `{"email":"admin@tms.local","password":"nope"}`, authErr: auth.ErrInvalidCredentials, wantCode: http.StatusUnauthorized},
		{name: "missing email", body: `{"password":"nope"}`, authErr: verr, wantCode: http.StatusUnprocessableEntity},
		{name: "malformed body", body: `{"email":`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &MockAuth{}
			e := newTestEcho(t, a)
			if tt.authErr != nil {
				a.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return(auth.Session{}, tt.authErr)
			}

			rec := serve(e, http.MethodPost, "/api/v1/login", tt.body, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.authErr == nil {
				a.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestMeAndLogout(t *testing.T) {
	a := &MockAuth{}
	e := newTestEcho(t, a)
	p := auth.Principal{User: operator(), TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	a.On("Verify", mock.Anything, "jwt").Return(p, nil)
	a.On("Revoke", mock.Anything, p).Return(nil).Once()

	rec := serve(e, http.MethodGet, "/api/v1/me", "", "jwt")
	require.Equal(t, http.StatusOK, rec.Code)
	var user servers.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Administrador", user.Name)

	rec = serve(e, http.MethodPost, "/api/v1/logout", "", "jwt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logout realizado."}`, rec.Body.String())

	a.AssertExpectations(t)
}

func TestRevokedToken(t *testing.T) {
	a := &MockAuth{}
	e := newTestEcho(t, a)
	a.On("Verify", mock.Anything, "old").Return(auth.Principal{}, auth.ErrTokenRevoked)

	rec := serve(e, http.MethodGet, "/api/v1/me", "", "old")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMalformedIDIsNotFound(t *testing.T) {
	a := &MockAuth{}
	e := newTestEcho(t, a)
	a.On("Verify", mock.Anything, "jwt").Return(auth.Principal{User: operator(), TokenID: "jti"}, nil)

	rec := serve(e, http.MethodPatch, "/api/v1/transport-orders/not-a-uuid/advance", "", "jwt")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Transport order not found."}`, rec.Body.String())

	rec = serve(e, http.MethodPut, "/api/v1/drivers/42", `{"name":"x"}`, "jwt")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Driver not found."}`, rec.Body.String())
}
