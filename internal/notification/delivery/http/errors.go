package http

import (
	"errors"
	"net/http"

	"rental-marketplace/internal/notification"
	pkgErrors "rental-marketplace/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrNotificationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
