package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"rental-marketplace/internal/notification"
)

// Subscribe streams events from userID's channel to handle until ctx ends.
// Undecodable payloads are reported through handleErr and skipped.
func Subscribe(ctx context.Context, client *redis.Client, prefix, userID string, handle func(notification.Event), handleErr func(error)) error {
	sub := client.Subscribe(ctx, Channel(prefix, userID))
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", Channel(prefix, userID), err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			event, err := DecodeEvent(msg.Payload)
			if err != nil {
				if handleErr != nil {
					handleErr(err)
				}
				continue
			}
			handle(event)
		}
	}
}

// DecodeEvent parses a payload written by the publisher.
func DecodeEvent(payload string) (notification.Event, error) {
	var event notification.Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return notification.Event{}, fmt.Errorf("decode notification event: %w", err)
	}
	return event, nil
}
