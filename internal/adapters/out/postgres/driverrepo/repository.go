package driverrepo

import (
	"context"
	"errors"

	"tms/internal/adapters/out/postgres/pgerr"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new driver.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column of an existing driver, so cleared values and a
// false active flag are stored too.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID, locking the row for the rest of the transaction.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a driver with id is registered.
func (r *GormDriverRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error
	return count > 0, err
}

// ExistsWithCPF reports whether a driver other than exclude holds cpf.
func (r *GormDriverRepository) ExistsWithCPF(ctx context.Context, cpf string, exclude *kernel.UUID) (bool, error) {
	return r.existsWith(ctx, "cpf", cpf, exclude)
}

// ExistsWithCNHNumber reports whether a driver other than exclude holds cnhNumber.
func (r *GormDriverRepository) ExistsWithCNHNumber(ctx context.Context, cnhNumber string, exclude *kernel.UUID) (bool, error) {
	return r.existsWith(ctx, "cnh_number", cnhNumber, exclude)
}

func (r *GormDriverRepository) existsWith(ctx context.Context, column, value string, exclude *kernel.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&DriverDTO{}).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if exclude != nil {
		query = query.Where("id <> ?", exclude.Bytes())
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// translate turns unique violations that slipped past the pre-checks into
// the same field errors the pre-checks produce.
func translate(err error) error {
	constraint, ok := pgerr.UniqueConstraint(err)
	if !ok {
		return err
	}

	switch constraint {
	case CPFIndex:
		return errs.NewFieldError(driver.FieldCPF, kernel.TakenMessage(driver.FieldCPF))
	case CNHNumberIndex:
		return errs.NewFieldError(driver.FieldCNHNumber, kernel.TakenMessage(driver.FieldCNHNumber))
	}
	return err
}
