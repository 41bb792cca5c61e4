package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "tms/internal/adapters/in/http"
	"tms/internal/auth"
	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	verr := errs.NewValidationError()
	verr.Add("cpf", "The cpf has already been taken.")
	verr.Add("name", "The name field is required.")

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      verr,
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"message":"The cpf has already been taken. (and 1 more error)","errors":{"cpf":["The cpf has already been taken."],"name":["The name field is required."]}}`,
		},
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("transport order", "x"),
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Transport order not found."}`,
		},
		{
			name:     "final status",
			err:      errs.NewInvalidTransitionError("transport order", "delivered"),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"message":"Order is already at final status."}`,
		},
		{
			name:     "delete outside pending",
			err:      errs.NewInvalidStateError("transport order", "delete", "collecting"),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"message":"Only pending orders can be deleted."}`,
		},
		{
			name:     "bad credentials",
			err:      auth.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantBody: `{"message":"Invalid credentials."}`,
		},
		{
			name:     "unauthenticated user lookup",
			err:      fmt.Errorf("%w: %w", errs.ErrUnauthenticated, errs.NewObjectNotFoundError("user", "x")),
			wantCode: http.StatusUnauthorized,
			wantBody: `{"message":"Unauthenticated."}`,
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter page"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Invalid format for parameter page"}`,
		},
		{
			name:     "route not found",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Not Found"}`,
		},
		{
			name:     "value error",
			err:      errs.NewValueIsRequiredError("id"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"The given data was invalid."}`,
		},
		{
			name:     "unexpected",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Server Error."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := test.NewNullLogger()
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/transport-orders", nil), rec)

			httpin.ErrorHandler(log)(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestErrorHandler_LogsServerErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/drivers", nil), httptest.NewRecorder())

	httpin.ErrorHandler(log)(errors.New("disk full"), c)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "POST", entry.Data["method"])
	assert.Equal(t, "http", entry.Data["component"])
}

func TestErrorHandler_ClientErrorsAreNotLogged(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), httptest.NewRecorder())

	httpin.ErrorHandler(log)(errs.ErrUnauthenticated, c)

	assert.Empty(t, hook.AllEntries())
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	log, _ := test.NewNullLogger()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/api/v1/drivers", nil), rec)

	httpin.ErrorHandler(log)(errs.ErrUnauthenticated, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}
