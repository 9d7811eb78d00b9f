package http

import (
	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/middleware"
)

// RegisterRoutes maps the inbox endpoints. All routes require Auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	inbox := rg.Group("/notifications", mw.Auth())
	{
		inbox.GET("", h.List)
		inbox.GET("/unread-count", h.UnreadCount)
		inbox.POST("/read-all", h.MarkAllRead)
		inbox.POST("/:id/read", h.MarkRead)
	}
}
