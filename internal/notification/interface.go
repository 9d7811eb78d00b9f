package notification

import (
	"context"

	"rental-marketplace/internal/model"
)

// Sink accepts notifications produced by other domains.
type Sink interface {
	Enqueue(ctx context.Context, n model.MatchNotification) (model.Notification, error)
}

// Publisher pushes a stored notification to connected clients.
type Publisher interface {
	Publish(ctx context.Context, n model.Notification) error
}

//go:generate mockery --name UseCase
type UseCase interface {
	Sink
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	UnreadCount(ctx context.Context, sc model.Scope) (int, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) error
	MarkAllRead(ctx context.Context, sc model.Scope) (int, error)
}
