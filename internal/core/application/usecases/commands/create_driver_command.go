package commands

import (
	"errors"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a new driver. Field rules are checked by the
// handler so format and uniqueness errors are reported together.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand(kernel.NewUUID(), driver.Draft{
//	    Name:        "Carlos Souza",
//	    CPF:         "123.456.789-00",
//	    CNHNumber:   "12345678900",
//	    CNHCategory: "D",
//	})
//	d, err := handler.Handle(ctx, cmd)
type CreateDriverCommand struct {
	driverID kernel.UUID
	draft    driver.Draft

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(driverID kernel.UUID, draft driver.Draft) (CreateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return CreateDriverCommand{}, err
	}

	return CreateDriverCommand{
		driverID: driverID,
		draft:    draft,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Draft() driver.Draft {
	return c.draft
}
