package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/booking"
	"rental-marketplace/pkg/datemath"
	"rental-marketplace/pkg/log"
)

// Handler is the public interface for the booking HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Availability(c *gin.Context)
	Calendar(c *gin.Context)
	Detail(c *gin.Context)
	ListMine(c *gin.Context)
	ListOwned(c *gin.Context)
	UpdateStatus(c *gin.Context)
	Cancel(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    booking.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the booking domain. dates resolves the
// relative expressions the availability query accepts.
func New(l log.Logger, uc booking.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
