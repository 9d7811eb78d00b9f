package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Options configures the client.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connect dials Redis and pings it.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
