package ports

import (
	"context"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for transport order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order and locks its row until the transaction ends.
	// Returns an *errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete permanently removes an order.
	Delete(ctx context.Context, id kernel.UUID) error
}

// OrderNumberSequence hands out the numeric part of order numbers.
type OrderNumberSequence interface {
	// Next returns a value strictly greater than any value returned before.
	// Inside a transaction the value is reserved until commit and handed out
	// again after a rollback.
	Next(ctx context.Context) (int64, error)
}
