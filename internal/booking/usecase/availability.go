package usecase

import (
	"context"
	"time"

	"rental-marketplace/internal/booking"
	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
)

// HasConflict reads the listing's live reservations and returns the first
// one overlapping [start, end]. Window validity is not checked here.
func (uc *implUseCase) HasConflict(ctx context.Context, listingID string, start, end time.Time, excludeReservationID string) (bool, model.Reservation, error) {
	live, err := uc.repo.ListReservations(ctx, repo.ListReservationsOptions{
		ListingID: listingID,
		Statuses:  model.LiveReservationStatuses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.HasConflict ListReservations: %v", err)
		return false, model.Reservation{}, err
	}
	conflict, ok := booking.FirstConflict(live, start, end, excludeReservationID)
	return ok, conflict, nil
}

// CheckAvailability validates the window and the listing, then asks the ledger.
func (uc *implUseCase) CheckAvailability(ctx context.Context, input booking.AvailabilityInput) (booking.AvailabilityOutput, error) {
	window := datemath.NewRange(input.StartDate, input.EndDate)
	if !window.Valid() {
		return booking.AvailabilityOutput{}, booking.ErrInvalidRange
	}
	if _, err := uc.getListing(ctx, input.ListingID); err != nil {
		return booking.AvailabilityOutput{}, err
	}

	found, conflict, err := uc.HasConflict(ctx, input.ListingID, window.Start, window.End, input.ExcludeReservationID)
	if err != nil {
		return booking.AvailabilityOutput{}, err
	}
	return booking.AvailabilityOutput{Available: !found, Conflict: conflict}, nil
}

// ListForListing returns the live reservations of a listing, earliest first.
func (uc *implUseCase) ListForListing(ctx context.Context, listingID string) (booking.ListOutput, error) {
	if _, err := uc.getListing(ctx, listingID); err != nil {
		return booking.ListOutput{}, err
	}
	live, err := uc.repo.ListReservations(ctx, repo.ListReservationsOptions{
		ListingID: listingID,
		Statuses:  model.LiveReservationStatuses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForListing ListReservations: %v", err)
		return booking.ListOutput{}, err
	}
	return booking.ListOutput{Reservations: live}, nil
}
