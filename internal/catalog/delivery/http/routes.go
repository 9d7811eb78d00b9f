package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Browsing is public; writes require the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.List)
		listings.GET("/:id", h.Detail)
		listings.POST("", mw.Auth(), h.Publish)
		listings.POST("/for-request/:request_id", mw.Auth(), h.PublishForRequest)
		listings.PUT("/:id", mw.Auth(), h.Update)
	}
}
