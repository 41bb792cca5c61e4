package http

import (
	"tms/internal/auth"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toUser(u auth.User) servers.User {
	return servers.User{
		Id:    u.ID.Bytes(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func toDriver(d queries.DriverResponse) servers.Driver {
	return servers.Driver{
		Id:          d.ID.Bytes(),
		Name:        d.Name,
		Cpf:         d.CPF,
		CnhNumber:   d.CNHNumber,
		CnhCategory: servers.DriverCnhCategory(d.CNHCategory),
		Phone:       d.Phone,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toOrder(o queries.OrderResponse) servers.Order {
	return servers.Order{
		Id:                 o.ID.Bytes(),
		OrderNumber:        o.OrderNumber,
		DriverId:           o.DriverID.Bytes(),
		OriginAddress:      o.OriginAddress,
		DestinationAddress: o.DestinationAddress,
		CargoDescription:   o.CargoDescription,
		WeightKg:           o.WeightKg,
		Status:             servers.OrderStatus(o.Status),
		StatusLabel:        o.Status.Label(),
		ScheduledDate:      openapi_types.Date{Time: o.ScheduledDate},
		Notes:              o.Notes,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		Driver:             toDriver(o.Driver),
	}
}

func toOrders(orders []queries.OrderResponse) []servers.Order {
	out := make([]servers.Order, len(orders))
	for i, o := range orders {
		out[i] = toOrder(o)
	}
	return out
}

func toOrderPage(p queries.OrderPage) servers.OrderPage {
	return servers.OrderPage{
		Data:        toOrders(p.Data),
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
		From:        p.From,
		To:          p.To,
	}
}

func toDashboard(d queries.Dashboard) servers.Dashboard {
	return servers.Dashboard{
		Totals: servers.DashboardTotals{
			Total:      d.Totals.Total,
			Pending:    d.Totals.Pending,
			InProgress: d.Totals.InProgress,
			Delivered:  d.Totals.Delivered,
		},
		Latest: toOrders(d.Latest),
	}
}
