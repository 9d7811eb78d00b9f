package repository

import "rental-marketplace/internal/model"

// CreateNotificationOptions holds parameters for a new inbox entry.
type CreateNotificationOptions struct {
	RecipientID string
	Kind        model.NotificationKind
	Title       string
	Message     string
	ListingID   string
	RequestID   string
}

// ListNotificationsOptions filters a recipient's inbox, newest first.
type ListNotificationsOptions struct {
	RecipientID string
	UnreadOnly  bool
	Limit       int
	Offset      int
}

type CountNotificationsOptions struct {
	RecipientID string
	UnreadOnly  bool
}

type MarkReadOptions struct {
	ID          string
	RecipientID string
}
