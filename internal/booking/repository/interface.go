package repository

import (
	"context"

	"rental-marketplace/internal/model"
)

// Repository is the composed interface for the booking data store.
type Repository interface {
	ReservationRepository

	// InListingTx runs fn in a transaction that serialises writers of one
	// listing. fn must only use the repository it is given. A non-nil error
	// from fn rolls back and is returned unchanged.
	InListingTx(ctx context.Context, listingID string, fn func(tx ReservationRepository) error) error
}

// ReservationRepository defines data access for reservations.
// Getters return a zero value (ID == "") when nothing matches.
type ReservationRepository interface {
	// CreateReservation returns ErrOverlap when the store rejects the window.
	CreateReservation(ctx context.Context, opt CreateReservationOptions) (model.Reservation, error)
	GetOneReservation(ctx context.Context, opt GetOneReservationOptions) (model.Reservation, error)
	ListReservations(ctx context.Context, opt ListReservationsOptions) ([]model.Reservation, error)
	// UpdateReservationStatus is a compare-and-set from opt.From to opt.To.
	UpdateReservationStatus(ctx context.Context, opt UpdateReservationStatusOptions) (model.Reservation, error)
}
