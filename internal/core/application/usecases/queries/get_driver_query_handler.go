package queries

import (
	"context"
	"database/sql"
	"errors"

	"tms/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle returns an *errs.ObjectNotFoundError for an unknown id.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT`+driverColumns+`
		FROM drivers d
		WHERE d.id = ?
	`, query.DriverID().Bytes()).Row()

	d, err := scanDriver(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DriverResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
		}
		return DriverResponse{}, err
	}
	return d, nil
}
