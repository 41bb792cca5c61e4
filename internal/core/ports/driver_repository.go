// Package ports defines the persistence contracts of the transport domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver. A unique-index violation on cpf or cnh
	// number comes back as an *errs.ValidationError for that field.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver and locks its row until the transaction ends.
	// Returns an *errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Exists reports whether a driver with id is registered, active or not.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// ExistsWithCPF reports whether another driver already holds cpf.
	// A non-nil exclude skips that driver, so a record never collides with itself.
	ExistsWithCPF(ctx context.Context, cpf string, exclude *kernel.UUID) (bool, error)

	// ExistsWithCNHNumber is ExistsWithCPF for the license number.
	ExistsWithCNHNumber(ctx context.Context, cnhNumber string, exclude *kernel.UUID) (bool, error)
}
