package model

import "time"

// NotificationKind classifies a notification.
type NotificationKind string

const (
	// NotificationListingMatch: a new listing satisfies a requester's open request.
	NotificationListingMatch NotificationKind = "listing_match"
	// NotificationRequestResponse: an owner published a listing in answer to a specific request.
	NotificationRequestResponse NotificationKind = "request_response"
)

// MatchNotification is the matcher's output handed to the notification sink.
type MatchNotification struct {
	RecipientID string
	Kind        NotificationKind
	ListingID   string
	RequestID   string
	Title       string
	Summary     string
}

// Notification is a persisted inbox entry.
type Notification struct {
	ID          string
	RecipientID string
	Kind        NotificationKind
	Title       string
	Message     string
	ListingID   string
	RequestID   string
	IsRead      bool
	CreatedAt   time.Time
}
