package queries

import (
	"time"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
)

// DriverResponse is the read model of a driver.
type DriverResponse struct {
	ID          kernel.UUID
	Name        string
	CPF         string
	CNHNumber   string
	CNHCategory driver.CNHCategory
	Phone       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderResponse is the read model of a transport order with its driver.
type OrderResponse struct {
	ID                 kernel.UUID
	OrderNumber        string
	DriverID           kernel.UUID
	OriginAddress      string
	DestinationAddress string
	CargoDescription   string
	WeightKg           *float64
	Status             order.Status
	ScheduledDate      time.Time
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Driver             DriverResponse
}

// OrderPage is one page of orders plus the pagination metadata clients use
// to render page links. From and To are nil for an empty page.
type OrderPage struct {
	Data        []OrderResponse
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int64
	From        *int
	To          *int
}

// DashboardTotals counts orders by lifecycle stage.
type DashboardTotals struct {
	Total      int64
	Pending    int64
	InProgress int64
	Delivered  int64
}

// Dashboard is the landing page summary.
type Dashboard struct {
	Totals DashboardTotals
	Latest []OrderResponse
}
