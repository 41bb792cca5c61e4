package queries

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var (
	ErrGetDriverQueryIsNotConstructed = errors.New(
		"GetDriverQuery must be created via NewGetDriverQuery constructor",
	)
)

// GetDriverQuery reads a single driver.
type GetDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}
	return GetDriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}
