package booking

import (
	"time"

	"rental-marketplace/internal/model"
)

// --- UseCase Inputs ---

// CreateInput asks for listing ListingID between two calendar dates.
// Clock parts are dropped.
type CreateInput struct {
	ListingID string
	StartDate time.Time
	EndDate   time.Time
}

// AvailabilityInput checks a window against the listing's live reservations.
type AvailabilityInput struct {
	ListingID            string
	StartDate            time.Time
	EndDate              time.Time
	ExcludeReservationID string
}

type UpdateStatusInput struct {
	ID     string
	Status string
}

// --- UseCase Outputs ---

// CreateOutput carries the new reservation and the renter's wanted requests
// it fulfilled.
type CreateOutput struct {
	Reservation       model.Reservation
	FulfilledRequests []string
}

// AvailabilityOutput names the first colliding reservation when not available.
type AvailabilityOutput struct {
	Available bool
	Conflict  model.Reservation
}

type DetailOutput struct {
	Reservation model.Reservation
	Listing     model.Listing
}

type ListOutput struct {
	Reservations []model.Reservation
}

// ConflictPair is two live reservations of one listing that overlap.
type ConflictPair struct {
	ListingID string
	First     model.Reservation
	Second    model.Reservation
}

// AuditOutput is the result of scanning every live reservation.
type AuditOutput struct {
	Scanned   int
	Conflicts []ConflictPair
}
