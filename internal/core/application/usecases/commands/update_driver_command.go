package commands

import (
	"errors"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand applies a partial update to a driver.
type UpdateDriverCommand struct {
	driverID kernel.UUID
	patch    driver.Patch

	guard guard.ConstructorGuard
}

func NewUpdateDriverCommand(driverID kernel.UUID, patch driver.Patch) (UpdateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}

	return UpdateDriverCommand{
		driverID: driverID,
		patch:    patch,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c UpdateDriverCommand) Patch() driver.Patch {
	return c.patch
}
