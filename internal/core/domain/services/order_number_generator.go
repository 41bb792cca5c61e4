package services

import (
	"context"
	"errors"
	"fmt"

	"tms/internal/core/domain/model/order"
	"tms/internal/core/ports"
)

// ErrSequenceIsRequired is returned when Next is called without a counter.
var ErrSequenceIsRequired = errors.New("order number sequence is required")

// OrderNumberGenerator turns counter values into order numbers.
//
// Numbers are unique because the counter only moves forward and, when the
// counter is bound to the creating transaction, concurrent creators queue on
// its row. Deleting the most recent order does not free its number.
//
// Example usage:
//
//	uow.Begin(ctx)
//	number, err := services.NewOrderNumberGenerator().Next(ctx, uow.OrderNumberSequence())
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(id, number, draft)
type OrderNumberGenerator struct{}

func NewOrderNumberGenerator() OrderNumberGenerator {
	return OrderNumberGenerator{}
}

// Next reserves the next value of seq and formats it.
func (OrderNumberGenerator) Next(ctx context.Context, seq ports.OrderNumberSequence) (order.Number, error) {
	if seq == nil {
		return order.Number{}, ErrSequenceIsRequired
	}

	value, err := seq.Next(ctx)
	if err != nil {
		return order.Number{}, fmt.Errorf("reserve order number: %w", err)
	}

	return order.NewNumber(value)
}
