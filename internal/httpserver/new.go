package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/notification"
	"rental-marketplace/internal/storage"
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/ratelimit"
	"rental-marketplace/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	timezone    string

	// Domains
	repos     storage.Repositories
	publisher notification.Publisher

	// Security
	jwtManager scope.Manager
	limiter    *ratelimit.Limiter
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// Timezone resolves relative dates such as "today". Defaults to UTC.
	Timezone string

	// Storage for every domain.
	Repositories storage.Repositories

	// Publisher is optional. Nil disables realtime fan-out.
	Publisher notification.Publisher

	JWTManager scope.Manager
	Limiter    *ratelimit.Limiter
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		timezone:    cfg.Timezone,
		repos:       cfg.Repositories,
		publisher:   cfg.Publisher,
		jwtManager:  cfg.JWTManager,
		limiter:     cfg.Limiter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.limiter == nil {
		return errors.New("rate limiter is required")
	}
	if srv.repos.Catalog == nil || srv.repos.Wanted == nil || srv.repos.Booking == nil || srv.repos.Notification == nil {
		return errors.New("repositories are required")
	}
	return nil
}
