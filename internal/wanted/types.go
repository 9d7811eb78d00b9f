package wanted

import (
	"time"

	"rental-marketplace/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
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

// ListOpenInput filters other users' requests. Status defaults to open.
type ListOpenInput struct {
	Status string
	Limit  int
	Offset int
}

// Optional request fields that an update can reset.
const (
	FieldSize        = "size"
	FieldColor       = "color"
	FieldOccasion    = "occasion"
	FieldDescription = "description"
	FieldBudgetMin   = "budget_min"
	FieldBudgetMax   = "budget_max"
	FieldNeededFrom  = "needed_from"
	FieldNeededUntil = "needed_until"
)

// UpdateInput is a partial update: empty strings and nil pointers keep the
// stored value. Fields named in Clear are reset to empty instead, overriding
// any value sent for them.
type UpdateInput struct {
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
	Clear       []string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Request model.WantedRequest
}

type ListOutput struct {
	Requests []model.WantedRequest
	Limit    int
	Offset   int
}

type DetailOutput struct {
	Request model.WantedRequest
}

type UpdateOutput struct {
	Request model.WantedRequest
}

type CancelOutput struct {
	Request model.WantedRequest
}
