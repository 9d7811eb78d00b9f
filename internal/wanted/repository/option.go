package repository

import (
	"time"

	"rental-marketplace/internal/model"
)

// CreateRequestOptions holds parameters for inserting a new request. Status is always open.
type CreateRequestOptions struct {
	RequesterID string
	Category    string
	Size        string
	Color       string
	Occasion    string
	Description string
	BudgetMin   *float64
	BudgetMax   *float64
	NeededFrom  *time.Time
	NeededUntil *time.Time
}

// GetOneRequestOptions selects a single request.
type GetOneRequestOptions struct {
	ID string
}

// ListRequestsOptions holds filter and pagination parameters.
// All non-empty fields are applied as AND conditions; results are newest first.
type ListRequestsOptions struct {
	RequesterID        string
	ExcludeRequesterID string
	Status             model.WantedStatus
	Limit              int
	Offset             int
}

// UpdateRequestOptions carries the full set of descriptive fields to store.
type UpdateRequestOptions struct {
	ID          string
	Category    string
	Size        string
	Color       string
	Occasion    string
	Description string
	BudgetMin   *float64
	BudgetMax   *float64
	NeededFrom  *time.Time
	NeededUntil *time.Time
}

// UpdateRequestStatusOptions describes a status transition.
type UpdateRequestStatusOptions struct {
	ID                 string
	From               model.WantedStatus
	To                 model.WantedStatus
	FulfilledByListing string
}
