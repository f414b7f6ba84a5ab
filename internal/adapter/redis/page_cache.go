package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redisClient "github.com/go-redis/redis/v8"
)

// PageCache stores raw dictionary pages keyed by lowercased word.
type PageCache struct {
	client *redisClient.Client
	prefix string
	ttl    time.Duration
}

// NewPageCache creates a PageCache. A zero ttl keeps pages forever.
func NewPageCache(client *redisClient.Client, prefix string, ttl time.Duration) *PageCache {
	return &PageCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *PageCache) pageKey(word string) string {
	return key(c.prefix, "page", strings.ToLower(strings.TrimSpace(word)))
}

// GetPage returns the cached page and whether it was present.
func (c *PageCache) GetPage(ctx context.Context, word string) (string, bool, error) {
	page, err := c.client.Get(ctx, c.pageKey(word)).Result()
	if err != nil {
		if errors.Is(err, redisClient.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get page %q: %w", word, err)
	}
	return page, true, nil
}

// SetPage stores page under word.
func (c *PageCache) SetPage(ctx context.Context, word, page string) error {
	if err := c.client.Set(ctx, c.pageKey(word), page, c.ttl).Err(); err != nil {
		return fmt.Errorf("set page %q: %w", word, err)
	}
	return nil
}
