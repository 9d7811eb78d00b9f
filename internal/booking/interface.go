package booking

import (
	"context"
	"time"

	"rental-marketplace/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create books a listing for the caller. The conflict check and the insert
	// share one listing-scoped transaction.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// HasConflict reports the first live reservation overlapping the window.
	HasConflict(ctx context.Context, listingID string, start, end time.Time, excludeReservationID string) (bool, model.Reservation, error)
	CheckAvailability(ctx context.Context, input AvailabilityInput) (AvailabilityOutput, error)
	// ListForListing is the calendar feed: live reservations only.
	ListForListing(ctx context.Context, listingID string) (ListOutput, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.Reservation, error)
	Cancel(ctx context.Context, sc model.Scope, id string) (model.Reservation, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	ListMine(ctx context.Context, sc model.Scope) (ListOutput, error)
	ListOwned(ctx context.Context, sc model.Scope) (ListOutput, error)
	AuditConflicts(ctx context.Context) (AuditOutput, error)
}
