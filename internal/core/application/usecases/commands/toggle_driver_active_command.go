package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrToggleDriverActiveCommandIsNotConstructed = errors.New(
	"ToggleDriverActiveCommand must be created via NewToggleDriverActiveCommand constructor",
)

// ToggleDriverActiveCommand flips a driver between active and inactive.
type ToggleDriverActiveCommand struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleDriverActiveCommand(driverID kernel.UUID) (ToggleDriverActiveCommand, error) {
	if err := driverID.Validate(); err != nil {
		return ToggleDriverActiveCommand{}, err
	}

	return ToggleDriverActiveCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ToggleDriverActiveCommand) Validate() error {
	return c.guard.Validate(ErrToggleDriverActiveCommandIsNotConstructed)
}

func (c ToggleDriverActiveCommand) DriverID() kernel.UUID {
	return c.driverID
}
