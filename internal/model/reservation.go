package model

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// LiveReservationStatuses block the calendar. Completed and cancelled never do.
var LiveReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationConfirmed,
	ReservationActive,
}

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationActive, ReservationCancelled},
	ReservationActive:    {ReservationCompleted},
}

// IsValid reports whether s is a known status.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationActive, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// IsLive reports whether s blocks the listing's calendar.
func (s ReservationStatus) IsLive() bool {
	for _, live := range LiveReservationStatuses {
		if s == live {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationCompleted || s == ReservationCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation is a date-range booking of a listing by a renter.
// StartDate and EndDate are calendar dates at UTC midnight, both inclusive.
type Reservation struct {
	ID              string
	ListingID       string
	RenterID        string
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
	TotalPrice      float64
	SecurityDeposit float64
	Status          ReservationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
