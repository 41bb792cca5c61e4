package queries

import (
	"errors"

	"tms/internal/pkg/guard"
)

// PerPage is the fixed page size of order listings.
const PerPage = 15

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery reads one page of transport orders, newest first.
//
// Example:
//
//	query := NewListOrdersQuery(NewOrderFilter(c.QueryParam("status"), c.QueryParam("driver_id")), page)
//	handler := NewListOrdersQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("page %d of %d, %d orders\n", page.CurrentPage, page.LastPage, page.Total)
type ListOrdersQuery struct {
	filter OrderFilter
	page   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery treats page numbers below 1 as the first page.
func NewListOrdersQuery(filter OrderFilter, page int) ListOrdersQuery {
	if page < 1 {
		page = 1
	}
	return ListOrdersQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Filter() OrderFilter {
	return q.filter
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
