package notification

import "rental-marketplace/internal/model"

type ListInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

type ListOutput struct {
	Notifications []model.Notification
	Unread        int
	Limit         int
	Offset        int
}

// Event is the JSON payload pushed to a user's realtime channel.
type Event struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	ListingID string `json:"listing_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// NewEvent converts a stored notification into its realtime payload.
func NewEvent(n model.Notification) Event {
	return Event{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		ListingID: n.ListingID,
		RequestID: n.RequestID,
		CreatedAt: n.CreatedAt.UnixMilli(),
	}
}
