package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	requests := rg.Group("/wanted", mw.Auth())
	{
		requests.POST("", h.Create)
		requests.GET("", h.ListOpen)
		requests.GET("/mine", h.ListMine)
		requests.GET("/:id", h.Detail)
		requests.PUT("/:id", h.Update)
		requests.POST("/:id/cancel", h.Cancel)
	}
}
