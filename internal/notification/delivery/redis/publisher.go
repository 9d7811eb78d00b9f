package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/notification"
)

type publisher struct {
	client *redis.Client
	prefix string
}

// NewPublisher fans stored notifications out on "<prefix>:<userID>" channels.
func NewPublisher(client *redis.Client, prefix string) notification.Publisher {
	return &publisher{client: client, prefix: prefix}
}

// Publish sends the notification as JSON to its recipient's channel.
func (p *publisher) Publish(ctx context.Context, n model.Notification) error {
	payload, err := json.Marshal(notification.NewEvent(n))
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", n.ID, err)
	}
	if err := p.client.Publish(ctx, Channel(p.prefix, n.RecipientID), payload).Err(); err != nil {
		return fmt.Errorf("publish notification %s: %w", n.ID, err)
	}
	return nil
}

// Channel names the per-user channel clients subscribe to.
func Channel(prefix, userID string) string {
	return prefix + ":" + userID
}
