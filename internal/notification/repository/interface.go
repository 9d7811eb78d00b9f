package repository

import (
	"context"

	"rental-marketplace/internal/model"
)

// Repository is the composed interface for the notification inbox.
type Repository interface {
	NotificationRepository
}

// NotificationRepository defines data access for inbox entries.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, opt CreateNotificationOptions) (model.Notification, error)
	ListNotifications(ctx context.Context, opt ListNotificationsOptions) ([]model.Notification, error)
	CountNotifications(ctx context.Context, opt CountNotificationsOptions) (int, error)
	// MarkRead reports false when no notification with that id belongs to the recipient.
	MarkRead(ctx context.Context, opt MarkReadOptions) (bool, error)
	MarkAllRead(ctx context.Context, recipientID string) (int, error)
}
