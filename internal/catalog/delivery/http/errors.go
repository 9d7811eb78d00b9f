package http

import (
	"errors"
	"net/http"

	"rental-marketplace/internal/catalog"
	pkgErrors "rental-marketplace/pkg/errors"
)

var errUnauthenticated = pkgErrors.ErrUnauthorized

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrListingNotFound),
		errors.Is(err, catalog.ErrRequestNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrNegativeDeposit):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotAuthorized),
		errors.Is(err, catalog.ErrSelfResponseForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, catalog.ErrRequestNotOpen):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
