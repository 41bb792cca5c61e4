package queries

import (
	"context"

	"tms/internal/core/domain/model/order"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle counts orders in one pass. In progress means any status listed by
// order.InProgressStatuses.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}

	inProgress := make([]string, 0, len(order.InProgressStatuses()))
	for _, s := range order.InProgressStatuses() {
		inProgress = append(inProgress, s.String())
	}

	var totals DashboardTotals
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ANY(?)),
			COUNT(*) FILTER (WHERE status = ?)
		FROM transport_orders
	`, order.Pending.String(), pq.Array(inProgress), order.Delivered.String()).
		Row().
		Scan(&totals.Total, &totals.Pending, &totals.InProgress, &totals.Delivered)
	if err != nil {
		return Dashboard{}, err
	}

	latest, err := readOrders(ctx, h.db, `
		SELECT`+orderColumns+ordersFrom+ordersNewestFirst+`
		LIMIT ?`, LatestOrdersLimit)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{Totals: totals, Latest: latest}, nil
}
