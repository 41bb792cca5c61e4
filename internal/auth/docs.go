// Package auth authenticates operators of the transport order service.
//
// Users sign in with e-mail and password (bcrypt hashes) and receive a
// signed HS256 bearer token. Every token carries a unique id (jti); logging
// out stores that id in a revocation list until the token would have expired
// anyway, and an hourly job purges the expired entries.
//
// Any authenticated principal may perform any operation, so there are no
// roles or scopes.
//
// Usage:
//
//	tokens, err := auth.NewTokenIssuer(secret, ttl)
//	svc := auth.NewService(users, revocations, tokens, log)
//
//	e := echo.New()
//	api := e.Group("/api/v1")
//	protected := api.Group("", auth.Middleware(svc))
package auth
