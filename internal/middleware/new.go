package middleware

import (
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/ratelimit"
	"rental-marketplace/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *ratelimit.Limiter
}

func New(l log.Logger, jwtManager scope.Manager, limiter *ratelimit.Limiter) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    limiter,
	}
}
