package catalog

import (
	"context"

	"rental-marketplace/internal/model"
)

// Lookup is the read-only view of the catalog other domains depend on.
type Lookup interface {
	// GetListing returns ErrListingNotFound when the listing does not exist.
	GetListing(ctx context.Context, id string) (model.Listing, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Lookup
	Publish(ctx context.Context, sc model.Scope, input PublishInput) (PublishOutput, error)
	PublishForRequest(ctx context.Context, sc model.Scope, input PublishForRequestInput) (PublishOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
}
