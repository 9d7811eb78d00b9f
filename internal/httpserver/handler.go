package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-marketplace/internal/middleware"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/validation"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.limiter)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	validation.Register()

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) && srv.mode != gin.ReleaseMode {
		srv.l.Warnf(ctx, "gin mode %q in production, expected %q", srv.mode, gin.ReleaseMode)
	}
	srv.l.Infof(ctx, "Environment: %s, gin mode: %s", srv.environment, srv.mode)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupDomains(ctx, api, mw); err != nil {
		return err
	}

	if srv.publisher != nil {
		srv.l.Infof(ctx, "Realtime notification fan-out enabled")
	} else {
		srv.l.Infof(ctx, "Publisher not configured, notifications are inbox-only")
	}

	return nil
}
