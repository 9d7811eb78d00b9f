package usecase

import (
	"context"

	"rental-marketplace/internal/booking"
	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
)

// Detail is visible to the renter and to the listing owner.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (booking.DetailOutput, error) {
	res, listing, err := uc.load(ctx, id)
	if err != nil {
		return booking.DetailOutput{}, err
	}
	if res.RenterID != sc.UserID && listing.OwnerID != sc.UserID {
		return booking.DetailOutput{}, booking.ErrNotAuthorized
	}
	return booking.DetailOutput{Reservation: res, Listing: listing}, nil
}

// ListMine returns the caller's reservations as renter, newest first.
func (uc *implUseCase) ListMine(ctx context.Context, sc model.Scope) (booking.ListOutput, error) {
	reservations, err := uc.repo.ListReservations(ctx, repo.ListReservationsOptions{
		RenterID:    sc.UserID,
		NewestFirst: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMine ListReservations: %v", err)
		return booking.ListOutput{}, err
	}
	return booking.ListOutput{Reservations: reservations}, nil
}

// ListOwned returns reservations on the caller's listings, newest first.
func (uc *implUseCase) ListOwned(ctx context.Context, sc model.Scope) (booking.ListOutput, error) {
	reservations, err := uc.repo.ListReservations(ctx, repo.ListReservationsOptions{
		OwnerID:     sc.UserID,
		NewestFirst: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOwned ListReservations: %v", err)
		return booking.ListOutput{}, err
	}
	return booking.ListOutput{Reservations: reservations}, nil
}

// AuditConflicts scans every live reservation and reports overlapping pairs
// within a listing. A healthy store reports none.
func (uc *implUseCase) AuditConflicts(ctx context.Context) (booking.AuditOutput, error) {
	live, err := uc.repo.ListReservations(ctx, repo.ListReservationsOptions{
		Statuses: model.LiveReservationStatuses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AuditConflicts ListReservations: %v", err)
		return booking.AuditOutput{}, err
	}

	byListing := make(map[string][]model.Reservation)
	var order []string
	for _, r := range live {
		if _, seen := byListing[r.ListingID]; !seen {
			order = append(order, r.ListingID)
		}
		byListing[r.ListingID] = append(byListing[r.ListingID], r)
	}

	out := booking.AuditOutput{Scanned: len(live)}
	for _, listingID := range order {
		group := byListing[listingID]
		for i := range group {
			a := datemath.NewRange(group[i].StartDate, group[i].EndDate)
			for _, other := range group[i+1:] {
				if a.Overlaps(datemath.NewRange(other.StartDate, other.EndDate)) {
					out.Conflicts = append(out.Conflicts, booking.ConflictPair{
						ListingID: listingID,
						First:     group[i],
						Second:    other,
					})
				}
			}
		}
	}

	if len(out.Conflicts) > 0 {
		uc.l.Warnf(ctx, "audit found %d overlapping reservation pair(s)", len(out.Conflicts))
	}
	return out, nil
}
