package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/scope"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the create request body.
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

// processListOpenReq binds the listing query parameters.
func (h *handler) processListOpenReq(c *gin.Context) (listOpenReq, model.Scope, error) {
	var req listOpenReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
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
