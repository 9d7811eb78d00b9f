package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Availability and the calendar feed are public; booking is rate limited per caller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	reservations := rg.Group("/reservations", mw.Auth())
	{
		reservations.POST("", mw.RateLimit(), h.Create)
		reservations.GET("/mine", h.ListMine)
		reservations.GET("/owned", h.ListOwned)
		reservations.GET("/:id", h.Detail)
		reservations.PUT("/:id/status", h.UpdateStatus)
		reservations.POST("/:id/cancel", h.Cancel)
	}

	listings := rg.Group("/listings")
	{
		listings.GET("/:id/availability", h.Availability)
		listings.GET("/:id/reservations", h.Calendar)
	}
}
