package model

import "time"

// Listing is a rentable item owned by a user.
type Listing struct {
	ID              string
	OwnerID         string
	Name            string
	Description     string
	Category        string
	Size            string
	Color           string
	PricePerDay     float64
	SecurityDeposit float64
	IsAvailable     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
