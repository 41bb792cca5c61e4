package commands

import (
	"context"

	"tms/internal/core/domain/model/driver"
)

// ToggleDriverActiveCommandHandler flips the activation flag. Orders already
// assigned to the driver are left as they are.
type ToggleDriverActiveCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewToggleDriverActiveCommandHandler(uowFactory DriverUoWFactory) ToggleDriverActiveCommandHandler {
	return ToggleDriverActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ToggleDriverActiveCommandHandler) Handle(ctx context.Context, cmd ToggleDriverActiveCommand) (*driver.Driver, error) {
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

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	d.ToggleActive()

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
