// Package redis holds the Redis-backed page cache and generation registry.
package redis

import (
	"context"
	"fmt"

	redisClient "github.com/go-redis/redis/v8"
)

// Config holds Redis connection settings.
type Config struct {
	URL       string
	KeyPrefix string
}

// NewClient parses the connection URL and pings the server.
func NewClient(ctx context.Context, cfg Config) (*redisClient.Client, error) {
	opt, err := redisClient.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redisClient.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func key(prefix string, parts ...string) string {
	k := prefix
	if k == "" {
		k = "wortschatz"
	}
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

// Pinger adapts a client to the health check interface.
type Pinger struct {
	Client *redisClient.Client
}

// Ping reports whether the server answers PING.
func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}
