package orderrepo

import (
	"context"

	"gorm.io/gorm"
)

// OrderNumberSequenceName is the counter row backing order numbers.
const OrderNumberSequenceName = "transport_orders.order_number"

// OrderNumberSequenceDTO is a named counter. last_value is the most recent
// value handed out.
type OrderNumberSequenceDTO struct {
	Name      string `gorm:"type:varchar(64);primaryKey"`
	LastValue int64  `gorm:"not null"`
}

func (OrderNumberSequenceDTO) TableName() string {
	return "order_number_sequences"
}

// GormOrderNumberSequence implements ports.OrderNumberSequence on a counter
// row. The upsert takes a row lock that is held until the surrounding
// transaction ends, so concurrent creators are served one after the other and
// a rolled back creation leaves the counter untouched.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next increments the counter and returns the new value.
func (s *GormOrderNumberSequence) Next(ctx context.Context) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_number_sequences (name, last_value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE
			SET last_value = order_number_sequences.last_value + 1
		RETURNING last_value
	`, OrderNumberSequenceName).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Seed raises the counter to the highest numeric suffix already stored in
// transport_orders, so numbers issued before the counter existed are never
// handed out again. It never lowers the counter.
func (s *GormOrderNumberSequence) Seed(ctx context.Context) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_number_sequences (name, last_value)
		SELECT ?, COALESCE(MAX(CAST(SUBSTRING(order_number FROM 4) AS BIGINT)), 0)
		FROM transport_orders
		WHERE order_number ~ '^OC-[0-9]+$'
		ON CONFLICT (name) DO UPDATE
			SET last_value = GREATEST(order_number_sequences.last_value, EXCLUDED.last_value)
		RETURNING last_value
	`, OrderNumberSequenceName).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
