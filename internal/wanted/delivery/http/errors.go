package http

import (
	"errors"
	"net/http"

	"rental-marketplace/internal/wanted"
	pkgErrors "rental-marketplace/pkg/errors"
)

var errUnauthenticated = pkgErrors.ErrUnauthorized

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, wanted.ErrRequestNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, wanted.ErrCategoryRequired),
		errors.Is(err, wanted.ErrInvalidBudget),
		errors.Is(err, wanted.ErrNegativeBudget),
		errors.Is(err, wanted.ErrInvalidWindow),
		errors.Is(err, wanted.ErrInvalidStatus),
		errors.Is(err, wanted.ErrUnknownField):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, wanted.ErrNotAuthorized):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, wanted.ErrRequestClosed):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
