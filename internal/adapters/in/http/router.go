package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"tms/internal/auth"
	"tms/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

var registerDocOnce sync.Once

// apiDoc serves the OpenAPI document to swag, which backs the Swagger UI.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

// Register mounts the API on e: the routes of servers.ServerInterface under
// BaseURL behind bearer authentication, except the operations the document
// marks public, plus /health, the OpenAPI document and the Swagger UI.
func Register(ctx context.Context, e *echo.Echo, s *Server, verifier auth.Verifier) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	if err = doc.Validate(ctx); err != nil {
		return fmt.Errorf("openapi document is invalid: %w", err)
	}

	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(docJSON)})
	})

	public := publicRoutes(doc, BaseURL)
	api := e.Group(BaseURL, auth.MiddlewareWithConfig(auth.MiddlewareConfig{
		Verifier: verifier,
		Skipper: func(c echo.Context) bool {
			_, ok := public[routeKey(c.Request().Method, c.Path())]
			return ok
		},
	}))
	servers.RegisterHandlers(api, s)

	e.GET(BaseURL+"/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	return nil
}

// publicRoutes lists the operations declared with an empty security
// requirement, keyed the way echo reports matched routes.
func publicRoutes(doc *openapi3.T, baseURL string) map[string]struct{} {
	public := make(map[string]struct{})
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			if op.Security != nil && len(*op.Security) == 0 {
				public[routeKey(method, baseURL+echoPath(path))] = struct{}{}
			}
		}
	}
	return public
}

// echoPath rewrites "/drivers/{id}" as "/drivers/:id".
func echoPath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			segments[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
		}
	}
	return strings.Join(segments, "/")
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}
