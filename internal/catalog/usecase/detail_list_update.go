package usecase

import (
	"context"

	"rental-marketplace/internal/catalog"
	repo "rental-marketplace/internal/catalog/repository"
	"rental-marketplace/internal/model"
)

// GetListing returns ErrListingNotFound when the listing does not exist.
func (uc *implUseCase) GetListing(ctx context.Context, id string) (model.Listing, error) {
	listing, err := uc.repo.GetOneListing(ctx, repo.GetOneListingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetListing GetOneListing: %v", err)
		return model.Listing{}, err
	}
	if listing.ID == "" {
		return model.Listing{}, catalog.ErrListingNotFound
	}
	return listing, nil
}

// Detail retrieves a single listing.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailOutput, error) {
	listing, err := uc.GetListing(ctx, id)
	if err != nil {
		return catalog.DetailOutput{}, err
	}
	return catalog.DetailOutput{Listing: listing}, nil
}

// List returns listings matching the filter, newest first.
func (uc *implUseCase) List(ctx context.Context, input catalog.ListInput) (catalog.ListOutput, error) {
	limit, offset := normalisePage(input.Limit, input.Offset)
	listings, err := uc.repo.ListListings(ctx, repo.ListListingsOptions{
		OwnerID:   input.OwnerID,
		Category:  input.Category,
		Available: input.Available,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListListings: %v", err)
		return catalog.ListOutput{}, err
	}
	return catalog.ListOutput{Listings: listings, Limit: limit, Offset: offset}, nil
}

// Update applies a partial update to a listing owned by the caller.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input catalog.UpdateInput) (catalog.UpdateOutput, error) {
	existing, err := uc.GetListing(ctx, input.ID)
	if err != nil {
		return catalog.UpdateOutput{}, err
	}
	if existing.OwnerID != sc.UserID {
		return catalog.UpdateOutput{}, catalog.ErrNotAuthorized
	}

	opt := repo.UpdateListingOptions{
		ID:              existing.ID,
		Name:            coalesce(input.Name, existing.Name),
		Description:     coalesce(input.Description, existing.Description),
		Category:        coalesce(input.Category, existing.Category),
		Size:            coalesce(input.Size, existing.Size),
		Color:           coalesce(input.Color, existing.Color),
		PricePerDay:     existing.PricePerDay,
		SecurityDeposit: existing.SecurityDeposit,
		IsAvailable:     existing.IsAvailable,
	}
	if input.PricePerDay != nil {
		opt.PricePerDay = *input.PricePerDay
	}
	if input.SecurityDeposit != nil {
		opt.SecurityDeposit = *input.SecurityDeposit
	}
	if input.IsAvailable != nil {
		opt.IsAvailable = *input.IsAvailable
	}
	if err := uc.validate(opt.Name, opt.PricePerDay, opt.SecurityDeposit); err != nil {
		return catalog.UpdateOutput{}, err
	}

	listing, err := uc.repo.UpdateListing(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateListing: %v", err)
		return catalog.UpdateOutput{}, err
	}
	if listing.ID == "" {
		return catalog.UpdateOutput{}, catalog.ErrListingNotFound
	}
	return catalog.UpdateOutput{Listing: listing}, nil
}
