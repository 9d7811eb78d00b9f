package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/model"
	pkgErrors "rental-marketplace/pkg/errors"
	"rental-marketplace/pkg/scope"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the booking body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processAvailabilityReq binds the window query and the listing id. Public.
func (h *handler) processAvailabilityReq(c *gin.Context) (availabilityReq, error) {
	var req availabilityReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.ListingID = c.Param("id")
	if req.ListingID == "" {
		return req, errMissingID
	}

	now := time.Now()
	var err error
	if req.start, err = h.dates.ParseDate(req.StartDate, now); err != nil {
		return req, pkgErrors.Newf(http.StatusBadRequest, "start_date: %v", err)
	}
	if req.end, err = h.dates.ParseDate(req.EndDate, now); err != nil {
		return req, pkgErrors.Newf(http.StatusBadRequest, "end_date: %v", err)
	}
	return req, req.validate()
}

// processUpdateStatusReq binds the status body and the URI id.
func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, model.Scope, error) {
	var req updateStatusReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, sc, errMissingID
	}
	return req, sc, req.validate()
}

// processIDReq reads the URI id together with the caller's scope.
func (h *handler) processIDReq(c *gin.Context) (string, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return "", sc, err
	}
	id := c.Param("id")
	if id == "" {
		return "", sc, errMissingID
	}
	return id, sc, nil
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errUnauthenticated
	}
	return sc, nil
}
