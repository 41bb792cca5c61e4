package commands

import (
	"context"
	"strings"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
)

// CreateDriverCommandHandler registers drivers.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the draft, checks cpf and cnh number against every
// registered driver and stores an active driver. All field failures come back
// in one *errs.ValidationError.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
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

	draft := cmd.Draft()
	verr := driver.ValidateDraft(draft)
	if err := checkDriverUniqueness(ctx, driverRepo, verr, &draft.CPF, &draft.CNHNumber, nil); err != nil {
		return nil, err
	}
	if err := verr.ErrorOrNil(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(cmd.DriverID(), draft)
	if err != nil {
		return nil, err
	}

	if err = driverRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// checkDriverUniqueness adds a "taken" message for each supplied identifier
// that another driver already holds. Fields that already failed their format
// rule are skipped.
func checkDriverUniqueness(
	ctx context.Context,
	repo ports.DriverRepository,
	verr *errs.ValidationError,
	cpf, cnhNumber *string,
	exclude *kernel.UUID,
) error {
	if cpf != nil && !verr.Has(driver.FieldCPF) {
		taken, err := repo.ExistsWithCPF(ctx, strings.TrimSpace(*cpf), exclude)
		if err != nil {
			return err
		}
		if taken {
			verr.Add(driver.FieldCPF, kernel.TakenMessage(driver.FieldCPF))
		}
	}

	if cnhNumber != nil && !verr.Has(driver.FieldCNHNumber) {
		taken, err := repo.ExistsWithCNHNumber(ctx, strings.TrimSpace(*cnhNumber), exclude)
		if err != nil {
			return err
		}
		if taken {
			verr.Add(driver.FieldCNHNumber, kernel.TakenMessage(driver.FieldCNHNumber))
		}
	}

	return nil
}
