package auth

import (
	"context"
	"strings"

	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const principalKey = "auth.principal"

// Verifier resolves a bearer token.
type Verifier interface {
	Verify(ctx context.Context, raw string) (Principal, error)
}

// MiddlewareConfig configures MiddlewareWithConfig.
type MiddlewareConfig struct {
	// Skipper lets public routes through without a token.
	Skipper middleware.Skipper

	Verifier Verifier
}

// Middleware rejects requests without a valid bearer token and stores the
// principal on the echo context. The error is left to the HTTP error handler.
func Middleware(v Verifier) echo.MiddlewareFunc {
	return MiddlewareWithConfig(MiddlewareConfig{Verifier: v})
}

// MiddlewareWithConfig is Middleware with a skipper.
func MiddlewareWithConfig(cfg MiddlewareConfig) echo.MiddlewareFunc {
	if cfg.Skipper == nil {
		cfg.Skipper = middleware.DefaultSkipper
	}
	v := cfg.Verifier

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper(c) {
				return next(c)
			}

			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return errs.ErrUnauthenticated
			}

			p, err := v.Verify(c.Request().Context(), raw)
			if err != nil {
				return err
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal stored by Middleware.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
