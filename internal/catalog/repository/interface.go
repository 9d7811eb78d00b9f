package repository

import (
	"context"

	"rental-marketplace/internal/model"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ListingRepository
}

// ListingRepository defines data access for listings.
// GetOneListing returns a zero value (ID == "") when nothing matches.
type ListingRepository interface {
	CreateListing(ctx context.Context, opt CreateListingOptions) (model.Listing, error)
	GetOneListing(ctx context.Context, opt GetOneListingOptions) (model.Listing, error)
	ListListings(ctx context.Context, opt ListListingsOptions) ([]model.Listing, error)
	UpdateListing(ctx context.Context, opt UpdateListingOptions) (model.Listing, error)
}
