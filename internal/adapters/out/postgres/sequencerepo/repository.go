package sequencerepo

import (
	"context"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSequenceRepository implements SequenceRepository using GORM.
//
// Allocation is one atomic upsert: INSERT the day's counter at 1, or on
// conflict increment it, returning the new value. Two transactions hitting
// the same day serialize on the row lock, so duplicate values cannot be
// handed out. A scan over existing order rows could be raced between the
// read and the insert; the counter row removes that window entirely.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next increments and returns the counter for the given day key, creating
// it at 1 on first use.
func (r *GormSequenceRepository) Next(ctx context.Context, day string) (int64, error) {
	if day == "" {
		return 0, errs.NewValueIsRequiredError("day")
	}

	var seq int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_sequences (day, seq)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET seq = order_sequences.seq + 1
		RETURNING seq
	`, day).Scan(&seq).Error
	if err != nil {
		return 0, err
	}

	return seq, nil
}
