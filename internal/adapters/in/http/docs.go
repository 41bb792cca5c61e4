// Package http is the inbound HTTP adapter: an echo implementation of
// servers.ServerInterface that translates requests into application
// commands and queries, and a single error handler that maps the error
// taxonomy of internal/pkg/errs onto status codes.
//
// Wiring:
//
//	e := echo.New()
//	e.HTTPErrorHandler = http.ErrorHandler(log)
//	server := http.NewServer(authService, commandHandlers, queryHandlers)
//	if err := http.Register(ctx, e, server, authService); err != nil {
//	    return err
//	}
package http
