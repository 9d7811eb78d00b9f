package http

import (
	"time"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/notification"
)

type listReq struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}

func (r listReq) toInput() notification.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return notification.ListInput{UnreadOnly: r.UnreadOnly, Limit: limit, Offset: r.Offset}
}

type notificationResp struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ListingID string    `json:"listing_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		ListingID: n.ListingID,
		RequestID: n.RequestID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
	Unread        int                `json:"unread"`
}

func (h *handler) newListResp(out notification.ListOutput) listResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = newNotificationResp(n)
	}
	return listResp{Notifications: items, Unread: out.Unread}
}

type countResp struct {
	Count int `json:"count"`
}
