package matcher

import (
	"context"

	"rental-marketplace/internal/model"
)

type UseCase interface {
	// OnListingPublished notifies every other user whose open request the
	// listing satisfies. Requests stay open. Requests in skipRequestIDs are
	// not considered.
	OnListingPublished(ctx context.Context, listing model.Listing, skipRequestIDs ...string) ([]model.MatchNotification, error)

	// OnReservationCreated marks the renter's own matching open requests as
	// fulfilled by the booked listing. No notifications are sent.
	OnReservationCreated(ctx context.Context, reservation model.Reservation, listing model.Listing) (RetireOutput, error)
}
