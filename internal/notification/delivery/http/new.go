package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/notification"
	"rental-marketplace/pkg/log"
)

// Handler is the public interface for the notification HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	UnreadCount(c *gin.Context)
	MarkRead(c *gin.Context)
	MarkAllRead(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

func New(l log.Logger, uc notification.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
