package commands

import (
	"context"
	"strings"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/domain/services"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
)

// CreateOrderCommandHandler creates transport orders in pending status with a
// freshly generated order number.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
//	var verr *errs.ValidationError
//	if errors.As(err, &verr) {
//	    // report verr.Fields() to the caller
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	generator  services.OrderNumberGenerator
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		generator:  services.NewOrderNumberGenerator(),
	}
}

// Handle validates the draft, checks the driver exists (inactive drivers are
// accepted), reserves a number and stores the order. The number reservation
// is rolled back with everything else when a later step fails.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	draft := cmd.Draft()
	verr := order.ValidateDraft(draft)
	if err := checkDriverExists(ctx, driverRepo, verr, draft.DriverID); err != nil {
		return nil, err
	}
	if err := verr.ErrorOrNil(); err != nil {
		return nil, err
	}

	number, err := h.generator.Next(ctx, uow.OrderNumberSequence())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), number, draft)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// checkDriverExists adds "The selected driver id is invalid." when raw is a
// well formed id no driver holds. Malformed ids already carry that message.
func checkDriverExists(ctx context.Context, repo ports.DriverRepository, verr *errs.ValidationError, raw string) error {
	if verr.Has(order.FieldDriverID) {
		return nil
	}

	id, err := kernel.UUIDFromString(strings.TrimSpace(raw))
	if err != nil {
		verr.Add(order.FieldDriverID, kernel.SelectedInvalidMessage(order.FieldDriverID))
		return nil //nolint:nilerr // reported as a field error
	}

	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		verr.Add(order.FieldDriverID, kernel.SelectedInvalidMessage(order.FieldDriverID))
	}
	return nil
}
