package queries

import (
	"errors"

	"tms/internal/pkg/guard"
)

// LatestOrdersLimit is how many recent orders the dashboard shows.
const LatestOrdersLimit = 10

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// GetDashboardQuery summarizes the order book: counts per lifecycle stage
// and the most recent orders.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}
