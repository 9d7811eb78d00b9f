package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/pkg/errors"
	"rental-marketplace/pkg/response"
	"rental-marketplace/pkg/scope"
)

// List godoc
// @Summary     List my notifications
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Param       unread_only query bool false "Only unread entries"
// @Param       limit       query int  false "Page size (default: 50)"
// @Param       offset      query int  false "Page offset"
// @Success     200 {object} listResp
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errors.ErrUnauthorized)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newListResp(output))
}

// UnreadCount godoc
// @Summary     Count my unread notifications
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} countResp
// @Router      /api/v1/notifications/unread-count [GET]
func (h *handler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errors.ErrUnauthorized)
		return
	}

	count, err := h.uc.UnreadCount(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.UnreadCount: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, countResp{Count: count})
}

// MarkRead godoc
// @Summary     Mark a notification as read
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notifications/{id}/read [POST]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errors.ErrUnauthorized)
		return
	}

	if err := h.uc.MarkRead(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.MarkRead: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// MarkAllRead godoc
// @Summary     Mark all my notifications as read
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} countResp
// @Router      /api/v1/notifications/read-all [POST]
func (h *handler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errors.ErrUnauthorized)
		return
	}

	count, err := h.uc.MarkAllRead(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.MarkAllRead: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, countResp{Count: count})
}
