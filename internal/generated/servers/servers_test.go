package servers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tms/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_IsValid(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, doc.Validate(t.Context()))

	assert.NotNil(t, doc.Paths.Find("/transport-orders/{id}/advance"))
	login := doc.Paths.Find("/login").Post
	require.NotNil(t, login.Security)
	assert.Empty(t, *login.Security)
}

func TestDriverPatch_UnmarshalJSON(t *testing.T) {
	var patch servers.DriverPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ana","phone":null}`), &patch))

	name, err := patch.Name.Get()
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
	assert.True(t, patch.Phone.IsSpecified())
	assert.True(t, patch.Phone.IsNull())
	assert.False(t, patch.Cpf.IsSpecified())
}

func TestOrderPatch_UnmarshalJSON_TypeMismatch(t *testing.T) {
	var patch servers.OrderPatch
	err := json.Unmarshal([]byte(`{"weight_kg":"heavy"}`), &patch)
	require.Error(t, err)
}

func TestOrderPatch_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(servers.OrderPatch{
		WeightKg: nullable.NewNullableWithValue(12.5),
		Notes:    nullable.NewNullNullable[string](),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"weight_kg":12.5,"notes":null}`, string(out))
}

type recordingServer struct {
	servers.ServerInterface
	id     string
	params servers.ListOrdersParams
}

func (s *recordingServer) GetOrder(ctx echo.Context, id string) error {
	s.id = id
	return ctx.NoContent(http.StatusNoContent)
}

func (s *recordingServer) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	s.params = params
	return ctx.NoContent(http.StatusNoContent)
}

func (s *recordingServer) Login(ctx echo.Context) error {
	return ctx.NoContent(http.StatusNoContent)
}

func TestRegisterHandlers_BindsParameters(t *testing.T) {
	e := echo.New()
	si := &recordingServer{}
	servers.RegisterHandlersWithBaseURL(e, si, "/api/v1")

	t.Run("path id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transport-orders/abc", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "abc", si.id)
	})

	t.Run("query params", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transport-orders?status=pending&page=3", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, si.params.Status)
		assert.Equal(t, "pending", *si.params.Status)
		require.NotNil(t, si.params.Page)
		assert.Equal(t, 3, *si.params.Page)
		assert.Nil(t, si.params.DriverId)
	})

	t.Run("malformed page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transport-orders?page=two", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("public route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/login", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRegisterHandlers_CoversEveryOperation(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	e := echo.New()
	servers.RegisterHandlersWithBaseURL(e, &recordingServer{}, "/api/v1")
	routed := make(map[string]bool)
	for _, r := range e.Routes() {
		routed[r.Method+" "+r.Path] = true
	}

	for path, item := range doc.Paths.Map() {
		echoPath := strings.NewReplacer("{", ":", "}", "").Replace("/api/v1" + path)
		for method := range item.Operations() {
			assert.True(t, routed[method+" "+echoPath], "%s %s is not routed", method, echoPath)
		}
	}
	assert.Len(t, e.Routes(), 17)
}
