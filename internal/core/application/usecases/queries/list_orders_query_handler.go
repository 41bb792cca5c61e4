package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler pages through transport_orders joined with drivers.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle counts the matching orders and reads the requested page. A page
// past the end is empty but still carries the metadata.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	filter := query.Filter()
	if filter.MatchesNothing() {
		return NewOrderPage(nil, 0, query.Page(), PerPage), nil
	}

	where, args := filter.where()

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM transport_orders o `+where, args...).Scan(&total).Error
	if err != nil {
		return OrderPage{}, err
	}

	offset := (query.Page() - 1) * PerPage
	orders := make([]OrderResponse, 0, PerPage)
	if int64(offset) < total {
		pageArgs := append(append([]any{}, args...), PerPage, offset)
		orders, err = readOrders(ctx, h.db, `
			SELECT`+orderColumns+ordersFrom+`
			`+where+ordersNewestFirst+`
			LIMIT ? OFFSET ?`, pageArgs...)
		if err != nil {
			return OrderPage{}, err
		}
	}

	return NewOrderPage(orders, total, query.Page(), PerPage), nil
}

// NewOrderPage computes the pagination metadata of one page.
func NewOrderPage(orders []OrderResponse, total int64, page, perPage int) OrderPage {
	if orders == nil {
		orders = make([]OrderResponse, 0)
	}

	lastPage := 1
	if total > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}

	p := OrderPage{
		Data:        orders,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if len(orders) > 0 {
		from := (page-1)*perPage + 1
		to := from + len(orders) - 1
		p.From, p.To = &from, &to
	}
	return p
}

func readOrders(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
