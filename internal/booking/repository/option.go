package repository

import (
	"time"

	"rental-marketplace/internal/model"
)

// CreateReservationOptions holds a fully priced reservation to insert.
type CreateReservationOptions struct {
	ListingID       string
	RenterID        string
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
	TotalPrice      float64
	SecurityDeposit float64
	Status          model.ReservationStatus
}

// GetOneReservationOptions selects a single reservation.
type GetOneReservationOptions struct {
	ID string
}

// ListReservationsOptions holds filter parameters; all non-empty fields are
// ANDed. OwnerID filters by the owner of the reserved listing.
// Results are ordered by listing then start date, or newest first when
// NewestFirst is set.
type ListReservationsOptions struct {
	ListingID   string
	RenterID    string
	OwnerID     string
	Statuses    []model.ReservationStatus
	NewestFirst bool
}

// UpdateReservationStatusOptions describes a status transition.
type UpdateReservationStatusOptions struct {
	ID   string
	From model.ReservationStatus
	To   model.ReservationStatus
}
