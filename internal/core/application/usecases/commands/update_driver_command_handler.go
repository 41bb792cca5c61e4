package commands

import (
	"context"

	"tms/internal/core/domain/model/driver"
)

// UpdateDriverCommandHandler applies partial driver updates.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the driver, validates only the supplied fields and checks cpf
// and cnh number uniqueness against every other driver. An unknown id fails
// with *errs.ObjectNotFoundError before any field is looked at.
func (h UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) (*driver.Driver, error) {
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

	patch := cmd.Patch()
	verr := driver.ValidatePatch(patch)
	id := d.ID()
	if err = checkDriverUniqueness(ctx, driverRepo, verr, patch.CPF, patch.CNHNumber, &id); err != nil {
		return nil, err
	}
	if err = verr.ErrorOrNil(); err != nil {
		return nil, err
	}

	if err = d.Apply(patch); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
