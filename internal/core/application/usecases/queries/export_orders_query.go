package queries

import (
	"errors"

	"tms/internal/pkg/guard"
)

// MaxExportRows is the default cap of a spreadsheet export.
const MaxExportRows = 10000

var (
	ErrExportOrdersQueryIsNotConstructed = errors.New(
		"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
	)
)

// ExportOrdersQuery reads every order matching the filter, in listing
// order, for spreadsheet export.
type ExportOrdersQuery struct {
	filter OrderFilter

	guard guard.ConstructorGuard
}

func NewExportOrdersQuery(filter OrderFilter) ExportOrdersQuery {
	return ExportOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

func (q ExportOrdersQuery) Filter() OrderFilter {
	return q.filter
}

func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}
