package usecase

import (
	"context"
	"errors"

	"rental-marketplace/internal/booking"
	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/catalog"
	"rental-marketplace/internal/model"
)

func (uc *implUseCase) getListing(ctx context.Context, id string) (model.Listing, error) {
	listing, err := uc.listings.GetListing(ctx, id)
	if errors.Is(err, catalog.ErrListingNotFound) {
		return model.Listing{}, booking.ErrListingNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.getListing GetListing: %v", err)
		return model.Listing{}, err
	}
	return listing, nil
}

func (uc *implUseCase) getReservation(ctx context.Context, id string) (model.Reservation, error) {
	res, err := uc.repo.GetOneReservation(ctx, repo.GetOneReservationOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getReservation GetOneReservation: %v", err)
		return model.Reservation{}, err
	}
	if res.ID == "" {
		return model.Reservation{}, booking.ErrReservationNotFound
	}
	return res, nil
}

// load fetches a reservation together with its listing.
func (uc *implUseCase) load(ctx context.Context, id string) (model.Reservation, model.Listing, error) {
	res, err := uc.getReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, model.Listing{}, err
	}
	listing, err := uc.getListing(ctx, res.ListingID)
	if err != nil {
		return model.Reservation{}, model.Listing{}, err
	}
	return res, listing, nil
}
