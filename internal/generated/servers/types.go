package servers

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for DriverCnhCategory.
const (
	DriverCnhCategoryA DriverCnhCategory = "A"
	DriverCnhCategoryB DriverCnhCategory = "B"
	DriverCnhCategoryC DriverCnhCategory = "C"
	DriverCnhCategoryD DriverCnhCategory = "D"
	DriverCnhCategoryE DriverCnhCategory = "E"
)

// Defines values for OrderStatus.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusCollecting OrderStatus = "collecting"
	OrderStatusCollected  OrderStatus = "collected"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Dashboard defines model for Dashboard.
type Dashboard struct {
	Latest []Order         `json:"latest"`
	Totals DashboardTotals `json:"totals"`
}

// DashboardTotals defines model for DashboardTotals.
type DashboardTotals struct {
	Delivered  int64 `json:"delivered"`
	InProgress int64 `json:"in_progress"`
	Pending    int64 `json:"pending"`
	Total      int64 `json:"total"`
}

// Driver defines model for Driver.
type Driver struct {
	CnhCategory DriverCnhCategory  `json:"cnh_category"`
	CnhNumber   string             `json:"cnh_number"`
	Cpf         string             `json:"cpf"`
	CreatedAt   time.Time          `json:"created_at"`
	Id          openapi_types.UUID `json:"id"`
	IsActive    bool               `json:"is_active"`
	Name        string             `json:"name"`
	Phone       *string            `json:"phone"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// DriverCnhCategory defines model for Driver.CnhCategory.
type DriverCnhCategory string

// DriverPatch Only the supplied fields are validated and applied. An explicit null on a required field fails validation.
type DriverPatch struct {
	CnhCategory nullable.Nullable[string] `json:"cnh_category,omitempty"`
	CnhNumber   nullable.Nullable[string] `json:"cnh_number,omitempty"`
	Cpf         nullable.Nullable[string] `json:"cpf,omitempty"`
	Name        nullable.Nullable[string] `json:"name,omitempty"`
	Phone       nullable.Nullable[string] `json:"phone,omitempty"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Message defines model for Message.
type Message struct {
	Message string `json:"message"`
}

// NewDriver defines model for NewDriver.
type NewDriver struct {
	CnhCategory string  `json:"cnh_category"`
	CnhNumber   string  `json:"cnh_number"`
	Cpf         string  `json:"cpf"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CargoDescription   string   `json:"cargo_description"`
	DestinationAddress string   `json:"destination_address"`
	DriverId           string   `json:"driver_id"`
	Notes              *string  `json:"notes,omitempty"`
	OriginAddress      string   `json:"origin_address"`
	ScheduledDate      string   `json:"scheduled_date"`
	WeightKg           *float64 `json:"weight_kg,omitempty"`
}

// Order defines model for Order.
type Order struct {
	CargoDescription   string             `json:"cargo_description"`
	CreatedAt          time.Time          `json:"created_at"`
	DestinationAddress string             `json:"destination_address"`
	Driver             Driver             `json:"driver"`
	DriverId           openapi_types.UUID `json:"driver_id"`
	Id                 openapi_types.UUID `json:"id"`
	Notes              *string            `json:"notes"`
	OrderNumber        string             `json:"order_number"`
	OriginAddress      string             `json:"origin_address"`
	ScheduledDate      openapi_types.Date `json:"scheduled_date"`
	Status             OrderStatus        `json:"status"`
	StatusLabel        string             `json:"status_label"`
	UpdatedAt          time.Time          `json:"updated_at"`
	WeightKg           *float64           `json:"weight_kg"`
}

// OrderStatus defines model for Order.Status.
type OrderStatus string

// OrderPage defines model for OrderPage.
type OrderPage struct {
	CurrentPage int     `json:"current_page"`
	Data        []Order `json:"data"`
	From        *int    `json:"from"`
	LastPage    int     `json:"last_page"`
	PerPage     int     `json:"per_page"`
	To          *int    `json:"to"`
	Total       int64   `json:"total"`
}

// OrderPatch Only the supplied fields are validated and applied. An explicit null on a required field fails validation. Status cannot be patched.
type OrderPatch struct {
	CargoDescription   nullable.Nullable[string]  `json:"cargo_description,omitempty"`
	DestinationAddress nullable.Nullable[string]  `json:"destination_address,omitempty"`
	DriverId           nullable.Nullable[string]  `json:"driver_id,omitempty"`
	Notes              nullable.Nullable[string]  `json:"notes,omitempty"`
	OriginAddress      nullable.Nullable[string]  `json:"origin_address,omitempty"`
	ScheduledDate      nullable.Nullable[string]  `json:"scheduled_date,omitempty"`
	WeightKg           nullable.Nullable[float64] `json:"weight_kg,omitempty"`
}

// Session defines model for Session.
type Session struct {
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	User      User      `json:"user"`
}

// User defines model for User.
type User struct {
	Email string             `json:"email"`
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
}

// ValidationError defines model for ValidationError.
type ValidationError struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status   *string `form:"status,omitempty" json:"status,omitempty"`
	DriverId *string `form:"driver_id,omitempty" json:"driver_id,omitempty"`
	Page     *int    `form:"page,omitempty" json:"page,omitempty"`
}

// ExportOrdersParams defines parameters for ExportOrders.
type ExportOrdersParams struct {
	Status   *string `form:"status,omitempty" json:"status,omitempty"`
	DriverId *string `form:"driver_id,omitempty" json:"driver_id,omitempty"`
}

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// CreateDriverJSONRequestBody defines body for CreateDriver for application/json ContentType.
type CreateDriverJSONRequestBody = NewDriver

// UpdateDriverJSONRequestBody defines body for UpdateDriver for application/json ContentType.
type UpdateDriverJSONRequestBody = DriverPatch

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = OrderPatch
