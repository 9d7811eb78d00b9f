package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/pkg/response"
)

// Create godoc
// @Summary     Book a listing
// @Description Reserves the listing for the caller. Overlapping live reservations are rejected with 409 and the colliding window.
// @Tags        Reservations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Booking window"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Listing not found"
// @Failure     409 {object} response.Resp "Date conflict"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/reservations [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// Availability godoc
// @Summary     Check a window
// @Tags        Reservations
// @Produce     json
// @Param       id                     path  string true  "Listing ID"
// @Param       start_date             query string true  "Start date (YYYY-MM-DD, today, tomorrow, in N days, next <weekday>)"
// @Param       end_date               query string true  "End date, same forms as start_date"
// @Param       exclude_reservation_id query string false "Reservation to ignore"
// @Success     200 {object} availabilityResp
// @Failure     404 {object} response.Resp "Listing not found"
// @Router      /api/v1/listings/{id}/availability [GET]
func (h *handler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAvailabilityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CheckAvailability(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckAvailability: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAvailabilityResp(output))
}

// Calendar godoc
// @Summary     Booked windows of a listing
// @Tags        Reservations
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} calendarResp
// @Router      /api/v1/listings/{id}/reservations [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListForListing(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForListing: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarResp(output))
}

// Detail godoc
// @Summary     Get a reservation
// @Tags        Reservations
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Reservation ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Neither renter nor owner"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reservations/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// ListMine godoc
// @Summary     Reservations made by the caller
// @Tags        Reservations
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/v1/reservations/mine [GET]
func (h *handler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListMine(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMine: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListOwned godoc
// @Summary     Reservations on the caller's listings
// @Tags        Reservations
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/v1/reservations/owned [GET]
func (h *handler) ListOwned(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListOwned(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOwned: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// UpdateStatus godoc
// @Summary     Move a reservation through its lifecycle
// @Description Owner only. pending -> confirmed|cancelled, confirmed -> active|cancelled, active -> completed.
// @Tags        Reservations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string          true "Reservation ID"
// @Param       body body updateStatusReq true "Target status"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Unknown status"
// @Failure     403 {object} response.Resp "Not the owner"
// @Failure     409 {object} response.Resp "Transition not allowed"
// @Router      /api/v1/reservations/{id}/status [PUT]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output))
}

// Cancel godoc
// @Summary     Cancel a pending reservation
// @Tags        Reservations
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Reservation ID"
// @Success     200 {object} itemResp
// @Failure     403 {object} response.Resp "Not the renter"
// @Failure     409 {object} response.Resp "Not pending"
// @Router      /api/v1/reservations/{id}/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Cancel(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output))
}
