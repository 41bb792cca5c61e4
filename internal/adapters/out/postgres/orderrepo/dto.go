// Package orderrepo provides data transfer objects and mapping functions for
// transport order persistence, plus the order number counter.
package orderrepo

import (
	"time"

	"tms/internal/adapters/out/postgres/driverrepo"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderNumberIndex is the unique index on transport_orders.order_number.
const OrderNumberIndex = "idx_transport_orders_order_number"

// OrderDTO is the row layout of a transport order. Driver only exists so
// AutoMigrate creates the restricting foreign key; it is never loaded or saved.
type OrderDTO struct {
	ID                 uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderNumber        string                `gorm:"type:varchar(20);not null;uniqueIndex:idx_transport_orders_order_number"`
	DriverID           uuid.UUID             `gorm:"type:uuid;not null;index"`
	Driver             *driverrepo.DriverDTO `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	OriginAddress      string                `gorm:"type:varchar(255);not null"`
	DestinationAddress string                `gorm:"type:varchar(255);not null"`
	CargoDescription   string                `gorm:"type:text;not null"`
	WeightKg           *float64              `gorm:"type:numeric(10,2)"`
	Status             string                `gorm:"type:varchar(20);not null;index"`
	ScheduledDate      time.Time             `gorm:"type:date;not null"`
	Notes              *string               `gorm:"type:text"`
	CreatedAt          time.Time             `gorm:"index"`
	UpdatedAt          time.Time
}

func (OrderDTO) TableName() string {
	return "transport_orders"
}

// fromDomain converts an order aggregate to its row.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 o.ID().Bytes(),
		OrderNumber:        o.Number().String(),
		DriverID:           o.DriverID().Bytes(),
		OriginAddress:      o.OriginAddress(),
		DestinationAddress: o.DestinationAddress(),
		CargoDescription:   o.CargoDescription(),
		WeightKg:           o.WeightKg(),
		Status:             o.Status().String(),
		ScheduledDate:      o.ScheduledDate(),
		Notes:              o.Notes(),
	}
}

// toDomain rebuilds an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	scheduled := dto.ScheduledDate
	scheduled = time.Date(scheduled.Year(), scheduled.Month(), scheduled.Day(), 0, 0, 0, 0, time.UTC)

	return order.RestoreOrder(
		id,
		number,
		driverID,
		dto.OriginAddress,
		dto.DestinationAddress,
		dto.CargoDescription,
		dto.WeightKg,
		order.Status(dto.Status),
		scheduled,
		dto.Notes,
	)
}
