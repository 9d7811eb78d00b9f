package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"rental-marketplace/internal/booking"
	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/model"
)

// UpdateStatus moves a reservation along the lifecycle. Only the listing
// owner may do so, and only along an allowed edge. Conflicts are not
// re-checked: a live reservation already holds its dates.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input booking.UpdateStatusInput) (model.Reservation, error) {
	ctx, span := uc.tracer.Start(ctx, "booking.UpdateStatus")
	defer span.End()
	span.SetAttributes(
		attribute.String("reservation.id", input.ID),
		attribute.String("reservation.status", input.Status),
	)

	next := model.ReservationStatus(input.Status)
	if !next.IsValid() {
		return model.Reservation{}, booking.ErrInvalidStatus
	}

	res, listing, err := uc.load(ctx, input.ID)
	if err != nil {
		return model.Reservation{}, err
	}
	if listing.OwnerID != sc.UserID {
		return model.Reservation{}, booking.ErrNotAuthorized
	}
	if !res.Status.CanTransitionTo(next) {
		return model.Reservation{}, booking.ErrInvalidTransition
	}

	return uc.transition(ctx, res, next, booking.ErrInvalidTransition)
}

// Cancel lets the renter withdraw a reservation that is still pending.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, id string) (model.Reservation, error) {
	res, err := uc.getReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	if res.RenterID != sc.UserID {
		return model.Reservation{}, booking.ErrNotAuthorized
	}
	if res.Status != model.ReservationPending {
		return model.Reservation{}, booking.ErrNotCancellable
	}

	return uc.transition(ctx, res, model.ReservationCancelled, booking.ErrNotCancellable)
}

// transition applies the compare-and-set. onStale is returned when the
// reservation moved between the read and the write.
func (uc *implUseCase) transition(ctx context.Context, res model.Reservation, next model.ReservationStatus, onStale error) (model.Reservation, error) {
	updated, err := uc.repo.UpdateReservationStatus(ctx, repo.UpdateReservationStatusOptions{
		ID:   res.ID,
		From: res.Status,
		To:   next,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.transition UpdateReservationStatus: %v", err)
		return model.Reservation{}, err
	}
	if updated.ID == "" {
		return model.Reservation{}, onStale
	}

	uc.l.Infof(ctx, "reservation %s moved %s -> %s", res.ID, res.Status, next)
	return updated, nil
}
