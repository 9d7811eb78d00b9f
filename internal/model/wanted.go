package model

import "time"

// WantedStatus is the lifecycle state of a wanted request.
type WantedStatus string

const (
	WantedOpen      WantedStatus = "open"
	WantedFulfilled WantedStatus = "fulfilled"
	WantedCancelled WantedStatus = "cancelled"
)

// IsTerminal reports whether the request can no longer change.
func (s WantedStatus) IsTerminal() bool {
	return s == WantedFulfilled || s == WantedCancelled
}

// WantedRequest is a user's standing ask for an item.
// Optional attributes are empty strings or nil pointers when unset.
type WantedRequest struct {
	ID                 string
	RequesterID        string
	Category           string
	Size               string
	Color              string
	Occasion           string
	Description        string
	BudgetMin          *float64
	BudgetMax          *float64
	NeededFrom         *time.Time
	NeededUntil        *time.Time
	Status             WantedStatus
	FulfilledByListing string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
