package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tms/internal/auth"
	"tms/internal/generated/servers"
	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Response messages for errors that carry no field detail.
const (
	MessageInvalidCredentials = "Invalid credentials."
	MessageUnauthenticated    = "Unauthenticated."
	MessageFinalStatus        = "Order is already at final status."
	MessageOnlyPendingDelete  = "Only pending orders can be deleted."
	MessageInvalidData        = "The given data was invalid."
	MessageServerError        = "Server Error."
)

// ErrorHandler renders every error that reaches echo. Validation failures
// list their fields; everything unexpected becomes a bare 500 and is logged.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	log = log.WithField("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"uri":    c.Request().RequestURI,
			}).Error("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			log.WithError(werr).Warn("failed to write error response")
		}
	}
}

func render(err error) (int, any) {
	var (
		verr     *errs.ValidationError
		notFound *errs.ObjectNotFoundError
		httpErr  *echo.HTTPError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, servers.ValidationError{
			Message: verr.Message(),
			Errors:  verr.Fields(),
		}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, message(MessageInvalidCredentials)
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, message(MessageUnauthenticated)
	case errors.As(err, &notFound):
		return http.StatusNotFound, message(notFoundMessage(notFound.ParamName))
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, message(MessageFinalStatus)
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusUnprocessableEntity, message(MessageOnlyPendingDelete)
	case errors.As(err, &httpErr):
		return httpErr.Code, message(httpErrorMessage(httpErr))
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, message(MessageInvalidData)
	default:
		return http.StatusInternalServerError, message(MessageServerError)
	}
}

func message(m string) servers.Message {
	return servers.Message{Message: m}
}

// notFoundMessage turns "transport order" into "Transport order not found.".
func notFoundMessage(entity string) string {
	if entity == "" {
		return "Resource not found."
	}
	return strings.ToUpper(entity[:1]) + entity[1:] + " not found."
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case nil:
		return http.StatusText(he.Code)
	default:
		return fmt.Sprint(m)
	}
}
