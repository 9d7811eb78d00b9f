package catalog

import "rental-marketplace/internal/model"

// --- UseCase Inputs ---

// PublishInput describes a new listing. A nil SecurityDeposit means 0.
type PublishInput struct {
	Name            string
	Description     string
	Category        string
	Size            string
	Color           string
	PricePerDay     float64
	SecurityDeposit *float64
}

// PublishForRequestInput publishes a listing in answer to a wanted request.
type PublishForRequestInput struct {
	RequestID string
	Listing   PublishInput
}

// ListInput filters listings. Empty fields are ignored.
type ListInput struct {
	OwnerID   string
	Category  string
	Available *bool
	Limit     int
	Offset    int
}

// UpdateInput is a partial update: empty strings and nil pointers keep the
// stored value.
type UpdateInput struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Size            string
	Color           string
	PricePerDay     *float64
	SecurityDeposit *float64
	IsAvailable     *bool
}

// --- UseCase Outputs ---

// PublishOutput carries the stored listing and every notification sent for it.
type PublishOutput struct {
	Listing       model.Listing
	Notifications []model.MatchNotification
}

type DetailOutput struct {
	Listing model.Listing
}

type ListOutput struct {
	Listings []model.Listing
	Limit    int
	Offset   int
}

type UpdateOutput struct {
	Listing model.Listing
}
