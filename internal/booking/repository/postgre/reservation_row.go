package postgre

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"rental-marketplace/internal/model"
)

// sqlStateExclusionViolation is raised by the reservations_no_overlap constraint.
const sqlStateExclusionViolation = "23P01"

type reservationRow struct {
	ID              string `gorm:"primaryKey"`
	ListingID       string
	RenterID        string
	StartDate       time.Time `gorm:"type:date"`
	EndDate         time.Time `gorm:"type:date"`
	TotalDays       int
	TotalPrice      float64
	SecurityDeposit float64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (reservationRow) TableName() string { return "reservations" }

func (row reservationRow) toModel() model.Reservation {
	return model.Reservation{
		ID:              row.ID,
		ListingID:       row.ListingID,
		RenterID:        row.RenterID,
		StartDate:       utcDate(row.StartDate),
		EndDate:         utcDate(row.EndDate),
		TotalDays:       row.TotalDays,
		TotalPrice:      row.TotalPrice,
		SecurityDeposit: row.SecurityDeposit,
		Status:          model.ReservationStatus(row.Status),
		CreatedAt:       row.CreatedAt.UTC(),
		UpdatedAt:       row.UpdatedAt.UTC(),
	}
}

// listingLock is the minimal view of listings needed to take a row lock.
type listingLock struct {
	ID string
}

func (listingLock) TableName() string { return "listings" }

func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateExclusionViolation
}
