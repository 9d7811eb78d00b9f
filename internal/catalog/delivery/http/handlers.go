package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/catalog"
	"rental-marketplace/pkg/response"
)

// Publish godoc
// @Summary     Publish a listing
// @Description Creates a listing owned by the caller and notifies requesters whose open requests it matches.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body publishReq true "Listing data"
// @Success     201  {object} publishResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/listings [POST]
func (h *handler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPublishReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Publish(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Publish: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newPublishResp(output))
}

// PublishForRequest godoc
// @Summary     Publish a listing for a wanted request
// @Description Creates a listing in answer to a wanted request. The requester is notified directly.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request_id path string     true "Wanted request ID"
// @Param       body       body publishReq true "Listing data"
// @Success     201 {object} publishResp
// @Failure     403 {object} response.Resp "Own request"
// @Failure     404 {object} response.Resp "Request not found"
// @Failure     409 {object} response.Resp "Request closed"
// @Router      /api/v1/listings/for-request/{request_id} [POST]
func (h *handler) PublishForRequest(c *gin.Context) {
	ctx := c.Request.Context()

	req, requestID, sc, err := h.processPublishForRequestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.PublishForRequest(ctx, sc, catalog.PublishForRequestInput{
		RequestID: requestID,
		Listing:   req.toInput(),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.PublishForRequest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newPublishResp(output))
}

// List godoc
// @Summary     Browse listings
// @Tags        Listings
// @Produce     json
// @Param       owner_id  query string false "Owner filter"
// @Param       category  query string false "Category filter (case-insensitive)"
// @Param       available query bool   false "Availability filter"
// @Param       limit     query int    false "Page size (default: 20)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Router      /api/v1/listings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a listing
// @Tags        Listings
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Listing))
}

// Update godoc
// @Summary     Update a listing
// @Description Partial update by the owner. Listings are never deleted; set is_available=false instead.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Listing ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     403 {object} response.Resp "Not the owner"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listings/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Listing))
}
