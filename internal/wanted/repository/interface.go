package repository

import (
	"context"

	"rental-marketplace/internal/model"
)

// Repository is the composed interface for the wanted domain data store.
type Repository interface {
	RequestRepository
}

// RequestRepository defines data access for wanted requests.
// Getters return a zero value (ID == "") when nothing matches.
type RequestRepository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.WantedRequest, error)
	GetOneRequest(ctx context.Context, opt GetOneRequestOptions) (model.WantedRequest, error)
	ListRequests(ctx context.Context, opt ListRequestsOptions) ([]model.WantedRequest, error)
	// UpdateRequest rewrites the descriptive fields of a request that is still open.
	UpdateRequest(ctx context.Context, opt UpdateRequestOptions) (model.WantedRequest, error)
	// UpdateRequestStatus moves a request from opt.From to opt.To. It is a
	// compare-and-set: a request no longer in opt.From yields a zero value.
	UpdateRequestStatus(ctx context.Context, opt UpdateRequestStatusOptions) (model.WantedRequest, error)
}
