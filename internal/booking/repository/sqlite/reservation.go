package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
)

const overlapTrigger = "reservation_overlap"

// CreateReservation inserts a priced reservation. The overlap trigger turns
// into ErrOverlap.
func (r *implRepository) CreateReservation(ctx context.Context, opt repo.CreateReservationOptions) (model.Reservation, error) {
	now := time.Now().UTC()
	res := model.Reservation{
		ID:              uuid.NewString(),
		ListingID:       opt.ListingID,
		RenterID:        opt.RenterID,
		StartDate:       datemath.Truncate(opt.StartDate),
		EndDate:         datemath.Truncate(opt.EndDate),
		TotalDays:       opt.TotalDays,
		TotalPrice:      opt.TotalPrice,
		SecurityDeposit: opt.SecurityDeposit,
		Status:          opt.Status,
		CreatedAt:       now.Truncate(time.Millisecond),
		UpdatedAt:       now.Truncate(time.Millisecond),
	}

	query := `INSERT INTO reservations (` + reservationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		res.ID, res.ListingID, res.RenterID, datemath.Format(res.StartDate), datemath.Format(res.EndDate),
		res.TotalDays, res.TotalPrice, res.SecurityDeposit, string(res.Status), now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		if strings.Contains(err.Error(), overlapTrigger) {
			r.l.Warnf(ctx, "%s: overlap guard rejected %s on listing %s", r.dsn("CreateReservation"),
				datemath.NewRange(res.StartDate, res.EndDate), res.ListingID)
			return model.Reservation{}, repo.ErrOverlap
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReservation"), err)
		return model.Reservation{}, repo.ErrFailedToInsert
	}
	return res, nil
}

// GetOneReservation returns a zero value when the reservation does not exist.
func (r *implRepository) GetOneReservation(ctx context.Context, opt repo.GetOneReservationOptions) (model.Reservation, error) {
	query := `SELECT ` + prefixed("r") + ` FROM reservations r WHERE r.id = ? LIMIT 1`
	res, err := scanReservation(r.q.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Reservation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneReservation"), err)
		return model.Reservation{}, repo.ErrFailedToGet
	}
	return res, nil
}

// ListReservations returns reservations matching opt.
func (r *implRepository) ListReservations(ctx context.Context, opt repo.ListReservationsOptions) ([]model.Reservation, error) {
	from, mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM %s %s`, prefixed("r"), from, mods)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReservations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListReservations"), err)
			return nil, repo.ErrFailedToList
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListReservations"), err)
		return nil, repo.ErrFailedToList
	}
	return reservations, nil
}

// UpdateReservationStatus is a compare-and-set on the current status.
func (r *implRepository) UpdateReservationStatus(ctx context.Context, opt repo.UpdateReservationStatusOptions) (model.Reservation, error) {
	const query = `UPDATE reservations SET status = ?, updated_at = ? WHERE id = ? AND status = ?`

	res, err := r.q.ExecContext(ctx, query, string(opt.To), time.Now().UTC().UnixMilli(), opt.ID, string(opt.From))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateReservationStatus"), err)
		return model.Reservation{}, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateReservationStatus"), err)
		return model.Reservation{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return model.Reservation{}, nil
	}
	return r.GetOneReservation(ctx, repo.GetOneReservationOptions{ID: opt.ID})
}
