package commands

import (
	"context"

	"tms/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies partial order updates.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, validates the supplied fields and, when the driver
// changes, checks the new driver exists. Status and number stay untouched.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	verr := order.ValidatePatch(patch)
	if patch.DriverID != nil {
		if err = checkDriverExists(ctx, driverRepo, verr, *patch.DriverID); err != nil {
			return nil, err
		}
	}
	if err = verr.ErrorOrNil(); err != nil {
		return nil, err
	}

	if err = o.Apply(patch); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
