package repository

// CreateListingOptions holds parameters for inserting a new listing.
// New listings are always available.
type CreateListingOptions struct {
	OwnerID         string
	Name            string
	Description     string
	Category        string
	Size            string
	Color           string
	PricePerDay     float64
	SecurityDeposit float64
}

// GetOneListingOptions selects a single listing.
type GetOneListingOptions struct {
	ID string
}

// ListListingsOptions holds filter and pagination parameters. Category is
// matched case-insensitively; results are newest first.
type ListListingsOptions struct {
	OwnerID   string
	Category  string
	Available *bool
	Limit     int
	Offset    int
}

// UpdateListingOptions carries the full set of mutable fields to store.
type UpdateListingOptions struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Size            string
	Color           string
	PricePerDay     float64
	SecurityDeposit float64
	IsAvailable     bool
}
