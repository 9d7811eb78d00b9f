package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"rental-marketplace/internal/booking"
	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
)

// Create books a listing for the caller. Checks run in order: listing exists,
// caller is not the owner, window is positive, no live overlap. Retiring the
// renter's wanted requests afterwards is best-effort.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateInput) (booking.CreateOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "booking.Create")
	defer span.End()
	span.SetAttributes(attribute.String("listing.id", input.ListingID))

	listing, err := uc.getListing(ctx, input.ListingID)
	if err != nil {
		return booking.CreateOutput{}, err
	}
	if listing.OwnerID == sc.UserID {
		return booking.CreateOutput{}, booking.ErrSelfBooking
	}

	window := datemath.NewRange(input.StartDate, input.EndDate)
	if !window.Valid() {
		return booking.CreateOutput{}, booking.ErrInvalidRange
	}
	days, total := booking.Price(window.Start, window.End, listing.PricePerDay)

	var created model.Reservation
	err = uc.repo.InListingTx(ctx, listing.ID, func(tx repo.ReservationRepository) error {
		live, err := tx.ListReservations(ctx, repo.ListReservationsOptions{
			ListingID: listing.ID,
			Statuses:  model.LiveReservationStatuses,
		})
		if err != nil {
			return err
		}
		if conflict, ok := booking.FirstConflict(live, window.Start, window.End, ""); ok {
			return newConflictError(conflict)
		}

		created, err = tx.CreateReservation(ctx, repo.CreateReservationOptions{
			ListingID:       listing.ID,
			RenterID:        sc.UserID,
			StartDate:       window.Start,
			EndDate:         window.End,
			TotalDays:       days,
			TotalPrice:      total,
			SecurityDeposit: listing.SecurityDeposit,
			Status:          model.ReservationPending,
		})
		return err
	})
	if err != nil {
		span.RecordError(err)
		return booking.CreateOutput{}, uc.mapCreateError(ctx, err, listing.ID, window)
	}

	span.SetAttributes(attribute.String("reservation.id", created.ID))
	uc.l.Infof(ctx, "reservation %s created for listing %s (%s, %d days)", created.ID, listing.ID, window, days)

	out := booking.CreateOutput{Reservation: created}
	retired, err := uc.matcher.OnReservationCreated(ctx, created, listing)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create matcher.OnReservationCreated: %v", err)
		return out, nil
	}
	out.FulfilledRequests = retired.Fulfilled
	return out, nil
}

// mapCreateError turns repository failures into domain errors. When the
// storage guard fired, the ledger is read again to name the conflict.
func (uc *implUseCase) mapCreateError(ctx context.Context, err error, listingID string, window datemath.Range) error {
	var conflict *booking.ConflictError
	switch {
	case errors.As(err, &conflict):
		return conflict
	case errors.Is(err, repo.ErrListingNotFound):
		return booking.ErrListingNotFound
	case errors.Is(err, repo.ErrOverlap):
		found, existing, lookupErr := uc.HasConflict(ctx, listingID, window.Start, window.End, "")
		if lookupErr != nil || !found {
			return &booking.ConflictError{}
		}
		return newConflictError(existing)
	default:
		uc.l.Errorf(ctx, "uc.Create InListingTx: %v", err)
		return err
	}
}

func newConflictError(r model.Reservation) *booking.ConflictError {
	return &booking.ConflictError{
		ReservationID: r.ID,
		Start:         r.StartDate,
		End:           r.EndDate,
	}
}
