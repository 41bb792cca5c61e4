package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tms/internal/auth"
	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
	"tms/internal/generated/servers"
	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"
	"github.com/skip2/go-qrcode"
)

// HeaderExportTruncated is set on an export that stopped at the row cap.
const HeaderExportTruncated = "X-Export-Truncated"

const (
	logoutMessage = "Logout realizado."
	tokenType     = "Bearer"
	labelSize     = 256
)

// Authenticator signs operators in and out.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (auth.Session, error)
	Revoke(ctx context.Context, p auth.Principal) error
}

// CommandHandlers groups the write use cases served over HTTP.
type CommandHandlers struct {
	CreateDriver       commands.CreateDriverCommandHandler
	UpdateDriver       commands.UpdateDriverCommandHandler
	ToggleDriverActive commands.ToggleDriverActiveCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrder        commands.UpdateOrderCommandHandler
	AdvanceOrderStatus commands.AdvanceOrderStatusCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
}

// QueryHandlers groups the read use cases served over HTTP.
type QueryHandlers struct {
	GetAllDrivers queries.GetAllDriversQueryHandler
	GetDriver     queries.GetDriverQueryHandler
	ListOrders    queries.ListOrdersQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	GetDashboard  queries.GetDashboardQueryHandler
	ExportOrders  queries.ExportOrdersQueryHandler
}

// Server implements servers.ServerInterface on top of the application use
// cases. Errors are returned unrendered; ErrorHandler turns them into
// responses.
type Server struct {
	auth     Authenticator
	commands CommandHandlers
	queries  QueryHandlers
	now      func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(authenticator Authenticator, commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		auth:     authenticator,
		commands: commandHandlers,
		queries:  queryHandlers,
		now:      time.Now,
	}
}

// Login handles POST /api/v1/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	session, err := s.auth.Authenticate(ctx.Request().Context(), body.Email, body.Password)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Session{
		Token:     session.Token,
		TokenType: tokenType,
		ExpiresAt: session.ExpiresAt,
		User:      toUser(session.User),
	})
}

// Logout handles POST /api/v1/logout by revoking the presented token.
func (s *Server) Logout(ctx echo.Context) error {
	p, err := principal(ctx)
	if err != nil {
		return err
	}
	if err = s.auth.Revoke(ctx.Request().Context(), p); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: logoutMessage})
}

// Me handles GET /api/v1/me.
func (s *Server) Me(ctx echo.Context) error {
	p, err := principal(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toUser(p.User))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	dashboard, err := s.queries.GetDashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDashboard(dashboard))
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context) error {
	drivers, err := s.queries.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = toDriver(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body servers.CreateDriverJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), driver.Draft{
		Name:        body.Name,
		CPF:         body.Cpf,
		CNHNumber:   body.CnhNumber,
		CNHCategory: body.CnhCategory,
		Phone:       body.Phone,
	})
	if err != nil {
		return err
	}

	created, err := s.commands.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondDriver(ctx, http.StatusCreated, created.ID())
}

// GetDriver handles GET /api/v1/drivers/{id}.
func (s *Server) GetDriver(ctx echo.Context, id string) error {
	driverID, err := parseID(id, "driver")
	if err != nil {
		return err
	}
	return s.respondDriver(ctx, http.StatusOK, driverID)
}

// UpdateDriver handles PUT /api/v1/drivers/{id}. Only the members present in
// the body are validated and applied.
func (s *Server) UpdateDriver(ctx echo.Context, id string) error {
	driverID, err := parseID(id, "driver")
	if err != nil {
		return err
	}

	var body servers.UpdateDriverJSONRequestBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, driver.Patch{
		Name:        requiredPatch(body.Name),
		CPF:         requiredPatch(body.Cpf),
		CNHNumber:   requiredPatch(body.CnhNumber),
		CNHCategory: requiredPatch(body.CnhCategory),
		Phone:       nullablePatch(body.Phone),
	})
	if err != nil {
		return err
	}

	if _, err = s.commands.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondDriver(ctx, http.StatusOK, driverID)
}

// ToggleDriverActive handles PATCH /api/v1/drivers/{id}/toggle-active.
func (s *Server) ToggleDriverActive(ctx echo.Context, id string) error {
	driverID, err := parseID(id, "driver")
	if err != nil {
		return err
	}

	cmd, err := commands.NewToggleDriverActiveCommand(driverID)
	if err != nil {
		return err
	}
	if _, err = s.commands.ToggleDriverActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondDriver(ctx, http.StatusOK, driverID)
}

// ListOrders handles GET /api/v1/transport-orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	page := 1
	if params.Page != nil {
		page = *params.Page
	}
	query := queries.NewListOrdersQuery(orderFilter(params.Status, params.DriverId), page)

	result, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderPage(result))
}

// CreateOrder handles POST /api/v1/transport-orders. The order always starts
// pending; the body has no status member.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Draft{
		DriverID:           body.DriverId,
		OriginAddress:      body.OriginAddress,
		DestinationAddress: body.DestinationAddress,
		CargoDescription:   body.CargoDescription,
		WeightKg:           body.WeightKg,
		ScheduledDate:      body.ScheduledDate,
		Notes:              body.Notes,
	})
	if err != nil {
		return err
	}

	created, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusCreated, created.ID())
}

// ExportOrders handles GET /api/v1/transport-orders/export.
func (s *Server) ExportOrders(ctx echo.Context, params servers.ExportOrdersParams) error {
	query := queries.NewExportOrdersQuery(orderFilter(params.Status, params.DriverId))

	export, err := s.queries.ExportOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	workbook, err := buildWorkbook(export.Orders)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("transport-orders-%s.xlsx", s.now().Format("20060102"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	if export.Truncated {
		ctx.Response().Header().Set(HeaderExportTruncated, "true")
	}
	return ctx.Blob(http.StatusOK, xlsxContentType, workbook)
}

// GetOrder handles GET /api/v1/transport-orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	orderID, err := parseID(id, "transport order")
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrder handles PUT /api/v1/transport-orders/{id}.
func (s *Server) UpdateOrder(ctx echo.Context, id string) error {
	orderID, err := parseID(id, "transport order")
	if err != nil {
		return err
	}

	var body servers.UpdateOrderJSONRequestBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, order.Patch{
		DriverID:           requiredPatch(body.DriverId),
		OriginAddress:      requiredPatch(body.OriginAddress),
		DestinationAddress: requiredPatch(body.DestinationAddress),
		CargoDescription:   requiredPatch(body.CargoDescription),
		WeightKg:           nullablePatch(body.WeightKg),
		ScheduledDate:      requiredPatch(body.ScheduledDate),
		Notes:              nullablePatch(body.Notes),
	})
	if err != nil {
		return err
	}

	if _, err = s.commands.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// AdvanceOrderStatus handles PATCH /api/v1/transport-orders/{id}/advance.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, id string) error {
	orderID, err := parseID(id, "transport order")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	if err != nil {
		return err
	}
	if _, err = s.commands.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// DeleteOrder handles DELETE /api/v1/transport-orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id string) error {
	orderID, err := parseID(id, "transport order")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderLabel handles GET /api/v1/transport-orders/{id}/label: a PNG QR
// code of the order number, printed on the shipment.
func (s *Server) GetOrderLabel(ctx echo.Context, id string) error {
	orderID, err := parseID(id, "transport order")
	if err != nil {
		return err
	}

	found, err := s.getOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}

	png, err := qrcode.Encode(found.OrderNumber, qrcode.Medium, labelSize)
	if err != nil {
		return fmt.Errorf("encode label for %s: %w", found.OrderNumber, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", found.OrderNumber+".png"))
	return ctx.Blob(http.StatusOK, "image/png", png)
}

func (s *Server) respondDriver(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetDriverQuery(id)
	if err != nil {
		return err
	}
	found, err := s.queries.GetDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toDriver(found))
}

func (s *Server) respondOrder(ctx echo.Context, status int, id kernel.UUID) error {
	found, err := s.getOrder(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toOrder(found))
}

func (s *Server) getOrder(ctx context.Context, id kernel.UUID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.queries.GetOrder.Handle(ctx, query)
}

func principal(ctx echo.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return auth.Principal{}, errs.ErrUnauthenticated
	}
	return p, nil
}

// parseID maps a malformed id to not found: no record can carry it.
func parseID(raw, entity string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(entity, raw, err)
	}
	return id, nil
}

func bindBody(ctx echo.Context, dest any) error {
	return (&echo.DefaultBinder{}).BindBody(ctx, dest)
}

func orderFilter(status, driverID *string) queries.OrderFilter {
	var s, d string
	if status != nil {
		s = *status
	}
	if driverID != nil {
		d = *driverID
	}
	return queries.NewOrderFilter(s, d)
}

// requiredPatch turns a member that cannot be cleared into a patch pointer.
// An explicit null is sent on as an empty value so the required rule
// reports it.
func requiredPatch(f nullable.Nullable[string]) *string {
	if !f.IsSpecified() {
		return nil
	}
	v, _ := f.Get()
	return &v
}

func nullablePatch[T any](f nullable.Nullable[T]) kernel.Nullable[T] {
	switch {
	case !f.IsSpecified():
		return kernel.Absent[T]()
	case f.IsNull():
		return kernel.Null[T]()
	default:
		v, _ := f.Get()
		return kernel.Some(v)
	}
}
