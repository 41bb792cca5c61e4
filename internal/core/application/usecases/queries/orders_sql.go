package queries

import (
	"strings"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"

	"github.com/google/uuid"
)

const driverColumns = `
	d.id, d.name, d.cpf, d.cnh_number, d.cnh_category, d.phone, d.is_active,
	d.created_at, d.updated_at`

const orderColumns = `
	o.id, o.order_number, o.driver_id, o.origin_address, o.destination_address,
	o.cargo_description, o.weight_kg, o.status, o.scheduled_date, o.notes,
	o.created_at, o.updated_at,` + driverColumns

const ordersFrom = `
	FROM transport_orders o
	JOIN drivers d ON d.id = o.driver_id`

// Newest first. Orders created in the same instant fall back to the order
// number, compared by length first so OC-100000 sorts after OC-99999.
const ordersNewestFirst = `
	ORDER BY o.created_at DESC, LENGTH(o.order_number) DESC, o.order_number DESC`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDriver(row rowScanner) (DriverResponse, error) {
	var (
		d        DriverResponse
		id       uuid.UUID
		category string
	)
	err := row.Scan(&id, &d.Name, &d.CPF, &d.CNHNumber, &category, &d.Phone, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return DriverResponse{}, err
	}

	if d.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DriverResponse{}, err
	}
	d.CNHCategory = driver.CNHCategory(category)
	return d, nil
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var (
		o         OrderResponse
		d         = &o.Driver
		id        uuid.UUID
		driverID  uuid.UUID
		driverRow uuid.UUID
		status    string
		dCategory string
	)
	err := row.Scan(
		&id, &o.OrderNumber, &driverID, &o.OriginAddress, &o.DestinationAddress,
		&o.CargoDescription, &o.WeightKg, &status, &o.ScheduledDate, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt,
		&driverRow, &d.Name, &d.CPF, &d.CNHNumber, &dCategory, &d.Phone, &d.IsActive,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if o.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
		return OrderResponse{}, err
	}
	if d.ID, err = kernel.UUIDFromBytes(driverRow[:]); err != nil {
		return OrderResponse{}, err
	}
	o.Status = order.Status(status)
	d.CNHCategory = driver.CNHCategory(dCategory)
	return o, nil
}

// OrderFilter narrows order listings by exact status and driver. Values that
// cannot match any stored order make the filter match nothing instead of
// failing the request.
type OrderFilter struct {
	status         *order.Status
	driverID       *kernel.UUID
	matchesNothing bool
}

// NewOrderFilter parses raw query string values. Blank values do not filter.
func NewOrderFilter(status, driverID string) OrderFilter {
	var f OrderFilter

	if s := strings.TrimSpace(status); s != "" {
		parsed, err := order.ParseStatus(s)
		if err != nil {
			f.matchesNothing = true
		} else {
			f.status = &parsed
		}
	}

	if s := strings.TrimSpace(driverID); s != "" {
		parsed, err := kernel.UUIDFromString(s)
		if err != nil {
			f.matchesNothing = true
		} else {
			f.driverID = &parsed
		}
	}

	return f
}

// Status returns the status filter, if any.
func (f OrderFilter) Status() (order.Status, bool) {
	if f.status == nil {
		return "", false
	}
	return *f.status, true
}

// DriverID returns the driver filter, if any.
func (f OrderFilter) DriverID() (kernel.UUID, bool) {
	if f.driverID == nil {
		return kernel.UUID{}, false
	}
	return *f.driverID, true
}

// MatchesNothing reports whether a filter value can never match.
func (f OrderFilter) MatchesNothing() bool {
	return f.matchesNothing
}

func (f OrderFilter) where() (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if f.status != nil {
		clauses = append(clauses, "o.status = ?")
		args = append(args, f.status.String())
	}
	if f.driverID != nil {
		clauses = append(clauses, "o.driver_id = ?")
		args = append(args, f.driverID.Bytes())
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
