package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "rental-marketplace/internal/catalog/repository"
	"rental-marketplace/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "rental-marketplace"
)

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck reports service identity.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck answers 503 until the database serves a trivial read.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := srv.repos.Catalog.ListListings(ctx, catalogRepo.ListListingsOptions{Limit: 1}); err != nil {
		srv.l.Warnf(ctx, "readiness probe: %v", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "database unavailable",
		})
		return
	}
	response.OK(c, statusBody("ready"))
}

// liveCheck reports that the process is serving.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
