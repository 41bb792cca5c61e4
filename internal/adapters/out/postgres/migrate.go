package postgres

import (
	"context"
	"fmt"

	"tms/internal/adapters/out/postgres/driverrepo"
	"tms/internal/adapters/out/postgres/orderrepo"
	"tms/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table of the store in creation order.
func Models() []any {
	return []any{
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderNumberSequenceDTO{},
		&userrepo.UserDTO{},
		&userrepo.RevokedTokenDTO{},
	}
}

// Migrate creates or updates the schema and raises the order number counter
// past every number already stored. It returns the counter value.
func Migrate(ctx context.Context, db *gorm.DB) (int64, error) {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return 0, fmt.Errorf("auto migrate: %w", err)
	}

	last, err := orderrepo.NewGormOrderNumberSequence(db).Seed(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed order number sequence: %w", err)
	}
	return last, nil
}
