package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/pkg/response"
)

// Create godoc
// @Summary     Open a wanted request
// @Description Publishes what the caller is looking for. Category is required; budget min must not exceed max.
// @Tags        Wanted
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Request data"
// @Success     201  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/wanted [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemResp(output.Request))
}

// ListOpen godoc
// @Summary     Browse wanted requests
// @Description Lists other users' requests, open ones by default.
// @Tags        Wanted
// @Produce     json
// @Security    BearerAuth
// @Param       status query string false "open, fulfilled or cancelled"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/wanted [GET]
func (h *handler) ListOpen(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListOpenReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListOpen(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOpen: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListMine godoc
// @Summary     List my wanted requests
// @Tags        Wanted
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/v1/wanted/mine [GET]
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

// Detail godoc
// @Summary     Get a wanted request
// @Tags        Wanted
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Request ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/wanted/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, _, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Request))
}

// Update godoc
// @Summary     Update a wanted request
// @Description Partial update by the requester while the request is open.
// @Tags        Wanted
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Request ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     403 {object} response.Resp "Not the requester"
// @Failure     409 {object} response.Resp "Request closed"
// @Router      /api/v1/wanted/{id} [PUT]
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

	response.OK(c, h.newItemResp(output.Request))
}

// Cancel godoc
// @Summary     Cancel a wanted request
// @Tags        Wanted
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Request ID"
// @Success     200 {object} itemResp
// @Failure     403 {object} response.Resp "Not the requester"
// @Failure     409 {object} response.Resp "Request closed"
// @Router      /api/v1/wanted/{id}/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Cancel(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Request))
}
