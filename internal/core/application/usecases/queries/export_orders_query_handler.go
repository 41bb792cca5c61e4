package queries

import (
	"context"

	"gorm.io/gorm"
)

// ExportOrdersResponse holds the exported orders. Truncated is set when more
// orders matched than the handler's row cap.
type ExportOrdersResponse struct {
	Orders    []OrderResponse
	Truncated bool
}

type ExportOrdersQueryHandler struct {
	db      *gorm.DB
	maxRows int
}

// NewExportOrdersQueryHandler caps exports at maxRows orders; values below 1
// fall back to MaxExportRows.
func NewExportOrdersQueryHandler(db *gorm.DB, maxRows int) ExportOrdersQueryHandler {
	if maxRows < 1 {
		maxRows = MaxExportRows
	}
	return ExportOrdersQueryHandler{db: db, maxRows: maxRows}
}

// Handle returns at most maxRows orders, newest first.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) (ExportOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportOrdersResponse{}, err
	}

	filter := query.Filter()
	if filter.MatchesNothing() {
		return ExportOrdersResponse{Orders: make([]OrderResponse, 0)}, nil
	}

	where, args := filter.where()
	args = append(args, h.maxRows+1)
	orders, err := readOrders(ctx, h.db, `
		SELECT`+orderColumns+ordersFrom+`
		`+where+ordersNewestFirst+`
		LIMIT ?`, args...)
	if err != nil {
		return ExportOrdersResponse{}, err
	}

	if len(orders) > h.maxRows {
		return ExportOrdersResponse{Orders: orders[:h.maxRows], Truncated: true}, nil
	}
	return ExportOrdersResponse{Orders: orders}, nil
}
