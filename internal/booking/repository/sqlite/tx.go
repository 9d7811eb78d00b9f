package sqlite

import (
	"context"
	"database/sql"

	"rental-marketplace/internal/booking/repository"
)

// InListingTx opens an immediate transaction. SQLite has a single writer, so
// every listing is serialised; the trigger on reservations is the backstop.
func (r *implRepository) InListingTx(ctx context.Context, listingID string, fn func(tx repository.ReservationRepository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InListingTx"), err)
		return repository.ErrFailedToBegin
	}
	defer tx.Rollback() //nolint:errcheck

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM listings WHERE id = ?`, listingID).Scan(&one)
	if err == sql.ErrNoRows {
		return repository.ErrListingNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s lookup: %v", r.dsn("InListingTx"), err)
		return repository.ErrFailedToGet
	}

	if err := fn(&implRepository{db: r.db, q: tx, l: r.l}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("InListingTx"), err)
		return repository.ErrFailedToCommit
	}
	return nil
}
