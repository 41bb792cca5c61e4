// Package driverrepo persists driver aggregates in the drivers table.
package driverrepo

import (
	"time"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Unique index names. Violations are mapped back to payload fields.
const (
	CPFIndex       = "idx_drivers_cpf"
	CNHNumberIndex = "idx_drivers_cnh_number"
)

// DriverDTO is the row layout of a driver.
type DriverDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null;index"`
	CPF         string    `gorm:"column:cpf;type:varchar(14);not null;uniqueIndex:idx_drivers_cpf"`
	CNHNumber   string    `gorm:"column:cnh_number;type:varchar(20);not null;uniqueIndex:idx_drivers_cnh_number"`
	CNHCategory string    `gorm:"column:cnh_category;type:varchar(1);not null"`
	Phone       *string   `gorm:"type:varchar(20)"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:          d.ID().Bytes(),
		Name:        d.Name(),
		CPF:         d.CPF(),
		CNHNumber:   d.CNHNumber(),
		CNHCategory: d.CNHCategory().String(),
		Phone:       d.Phone(),
		IsActive:    d.IsActive(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.CPF,
		dto.CNHNumber,
		driver.CNHCategory(dto.CNHCategory),
		dto.Phone,
		dto.IsActive,
	)
}
