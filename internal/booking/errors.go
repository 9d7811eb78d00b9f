package booking

import (
	"errors"
	"fmt"
	"time"

	"rental-marketplace/pkg/datemath"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrListingNotFound     = errors.New("listing not found")
	ErrSelfBooking         = errors.New("cannot book your own listing")
	ErrInvalidRange        = errors.New("end date must be after start date")
	ErrDateConflict        = errors.New("dates conflict with an existing reservation")
	ErrNotAuthorized       = errors.New("not authorized for this reservation")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrNotCancellable      = errors.New("only pending reservations can be cancelled")
)

// ConflictError reports the live reservation a requested window collides
// with. It matches ErrDateConflict under errors.Is. Start and End are zero
// when the storage backstop rejected the write and the colliding
// reservation could no longer be read.
type ConflictError struct {
	ReservationID string
	Start         time.Time
	End           time.Time
}

func (e *ConflictError) Error() string {
	if e.Start.IsZero() {
		return ErrDateConflict.Error()
	}
	return fmt.Sprintf("%s (%s to %s)", ErrDateConflict.Error(), datemath.Format(e.Start), datemath.Format(e.End))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrDateConflict
}
