package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/scope"
)

var errMissingID = errors.New("id is required")

// processPublishReq binds and validates the publish body.
func (h *handler) processPublishReq(c *gin.Context) (publishReq, model.Scope, error) {
	var req publishReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processPublishForRequestReq binds the publish body and the target request id.
func (h *handler) processPublishForRequestReq(c *gin.Context) (publishReq, string, model.Scope, error) {
	req, sc, err := h.processPublishReq(c)
	if err != nil {
		return req, "", sc, err
	}
	requestID := c.Param("request_id")
	if requestID == "" {
		return req, "", sc, errMissingID
	}
	return req, requestID, sc, nil
}

// processListReq binds the browse query parameters. Browsing is public.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update body and the URI id.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, model.Scope, error) {
	var req updateReq
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

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errUnauthenticated
	}
	return sc, nil
}
