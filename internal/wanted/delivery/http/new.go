package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/wanted"
	"rental-marketplace/pkg/log"
)

// Handler is the public interface for the wanted HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	ListOpen(c *gin.Context)
	ListMine(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Cancel(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc wanted.UseCase
}

// New creates a new HTTP handler for the wanted domain.
func New(l log.Logger, uc wanted.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
