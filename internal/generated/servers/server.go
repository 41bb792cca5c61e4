// Package servers holds the wire contract of the HTTP API described by
// openapi.yaml: request and response models, the ServerInterface the
// adapter implements, and the echo bindings that decode path and query
// parameters before a handler runs.
//
// The package is maintained by hand in the layout oapi-codegen produces for
// an echo server. Keep openapi.yaml, the models and ServerInterface in step
// when an operation changes; TestGetSwagger_IsValid checks the document.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /dashboard)
	GetDashboard(ctx echo.Context) error
	// (GET /drivers)
	ListDrivers(ctx echo.Context) error
	// (POST /drivers)
	CreateDriver(ctx echo.Context) error
	// (GET /drivers/{id})
	GetDriver(ctx echo.Context, id string) error
	// (PUT /drivers/{id})
	UpdateDriver(ctx echo.Context, id string) error
	// (PATCH /drivers/{id}/toggle-active)
	ToggleDriverActive(ctx echo.Context, id string) error
	// (POST /login)
	Login(ctx echo.Context) error
	// (POST /logout)
	Logout(ctx echo.Context) error
	// (GET /me)
	Me(ctx echo.Context) error
	// (GET /transport-orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /transport-orders)
	CreateOrder(ctx echo.Context) error
	// (GET /transport-orders/export)
	ExportOrders(ctx echo.Context, params ExportOrdersParams) error
	// (DELETE /transport-orders/{id})
	DeleteOrder(ctx echo.Context, id string) error
	// (GET /transport-orders/{id})
	GetOrder(ctx echo.Context, id string) error
	// (PUT /transport-orders/{id})
	UpdateOrder(ctx echo.Context, id string) error
	// (PATCH /transport-orders/{id}/advance)
	AdvanceOrderStatus(ctx echo.Context, id string) error
	// (GET /transport-orders/{id}/label)
	GetOrderLabel(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetDashboard(ctx)
}

// ListDrivers converts echo context to params.
func (w *ServerInterfaceWrapper) ListDrivers(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListDrivers(ctx)
}

// CreateDriver converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDriver(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateDriver(ctx)
}

// GetDriver converts echo context to params.
func (w *ServerInterfaceWrapper) GetDriver(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetDriver(ctx, id)
}

// UpdateDriver converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDriver(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateDriver(ctx, id)
}

// ToggleDriverActive converts echo context to params.
func (w *ServerInterfaceWrapper) ToggleDriverActive(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ToggleDriverActive(ctx, id)
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

// Logout converts echo context to params.
func (w *ServerInterfaceWrapper) Logout(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.Logout(ctx)
}

// Me converts echo context to params.
func (w *ServerInterfaceWrapper) Me(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.Me(ctx)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ListOrdersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "driver_id", &params.DriverId); err != nil {
		return err
	}
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateOrder(ctx)
}

// ExportOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ExportOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ExportOrdersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "driver_id", &params.DriverId); err != nil {
		return err
	}
	return w.Handler.ExportOrders(ctx, params)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DeleteOrder(ctx, id)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetOrder(ctx, id)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateOrder(ctx, id)
}

// AdvanceOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.AdvanceOrderStatus(ctx, id)
}

// GetOrderLabel converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderLabel(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetOrderLabel(ctx, id)
}

// The id stays a string: an id that does not parse names no record, and
// the handler reports it as not found.
func bindID(ctx echo.Context) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for routing.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/dashboard", wrapper.GetDashboard)
	router.GET(baseURL+"/drivers", wrapper.ListDrivers)
	router.POST(baseURL+"/drivers", wrapper.CreateDriver)
	router.GET(baseURL+"/drivers/:id", wrapper.GetDriver)
	router.PUT(baseURL+"/drivers/:id", wrapper.UpdateDriver)
	router.PATCH(baseURL+"/drivers/:id/toggle-active", wrapper.ToggleDriverActive)
	router.POST(baseURL+"/login", wrapper.Login)
	router.POST(baseURL+"/logout", wrapper.Logout)
	router.GET(baseURL+"/me", wrapper.Me)
	router.GET(baseURL+"/transport-orders", wrapper.ListOrders)
	router.POST(baseURL+"/transport-orders", wrapper.CreateOrder)
	router.GET(baseURL+"/transport-orders/export", wrapper.ExportOrders)
	router.DELETE(baseURL+"/transport-orders/:id", wrapper.DeleteOrder)
	router.GET(baseURL+"/transport-orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/transport-orders/:id", wrapper.UpdateOrder)
	router.PATCH(baseURL+"/transport-orders/:id/advance", wrapper.AdvanceOrderStatus)
	router.GET(baseURL+"/transport-orders/:id/label", wrapper.GetOrderLabel)
}
