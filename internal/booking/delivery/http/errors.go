package http

import (
	"errors"
	"net/http"

	"rental-marketplace/internal/booking"
	"rental-marketplace/pkg/datemath"
	pkgErrors "rental-marketplace/pkg/errors"
)

var errUnauthenticated = pkgErrors.ErrUnauthorized

// mapError translates domain errors into HTTP errors from pkg/errors.
// Date conflicts carry the colliding window so clients can suggest new dates.
func (h *handler) mapError(err error) error {
	var conflict *booking.ConflictError
	switch {
	case errors.As(err, &conflict):
		if conflict.Start.IsZero() {
			return pkgErrors.NewHTTPError(http.StatusConflict, conflict.Error())
		}
		return pkgErrors.NewHTTPErrorWithDetails(http.StatusConflict, conflict.Error(), map[string]any{
			"conflict_start": datemath.Format(conflict.Start),
			"conflict_end":   datemath.Format(conflict.End),
			"reservation_id": conflict.ReservationID,
		})
	case errors.Is(err, booking.ErrListingNotFound),
		errors.Is(err, booking.ErrReservationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrSelfBooking),
		errors.Is(err, booking.ErrInvalidRange),
		errors.Is(err, booking.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotAuthorized):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrNotCancellable),
		errors.Is(err, booking.ErrDateConflict):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
