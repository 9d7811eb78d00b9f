package scope

import (
	"context"

	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/log"
)

type scopeCtxKey struct{}

// SetScopeToContext stores sc and exposes its user id to the logger.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	ctx = context.WithValue(ctx, scopeCtxKey{}, sc)
	return context.WithValue(ctx, log.UserIDKey, sc.UserID)
}

// GetScopeFromContext returns the scope set by the auth middleware.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok && sc.UserID != ""
}
