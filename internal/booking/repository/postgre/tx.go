package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rental-marketplace/internal/booking/repository"
)

// errFromFn carries fn's error out of gorm's Transaction untouched.
type errFromFn struct{ err error }

func (e errFromFn) Error() string { return e.err.Error() }

// InListingTx locks the listing row FOR UPDATE, so concurrent bookings of the
// same listing queue behind each other while other listings proceed.
func (r *implRepository) InListingTx(ctx context.Context, listingID string, fn func(tx repository.ReservationRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lock listingLock
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", listingID).
			Take(&lock).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrListingNotFound
		}
		if err != nil {
			r.l.Errorf(ctx, "%s lock: %v", r.dsn("InListingTx"), err)
			return repository.ErrFailedToGet
		}

		if err := fn(&implRepository{db: tx, l: r.l}); err != nil {
			return errFromFn{err: err}
		}
		return nil
	})

	var fnErr errFromFn
	switch {
	case err == nil:
		return nil
	case errors.As(err, &fnErr):
		return fnErr.err
	case errors.Is(err, repository.ErrListingNotFound), errors.Is(err, repository.ErrFailedToGet):
		return err
	default:
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("InListingTx"), err)
		return repository.ErrFailedToCommit
	}
}
