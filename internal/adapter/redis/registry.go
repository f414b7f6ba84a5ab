package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisClient "github.com/go-redis/redis/v8"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// Registry keeps generation counters in two Redis hashes: one for counters,
// one for last generation timestamps (RFC 3339).
type Registry struct {
	client *redisClient.Client
	prefix string
	now    func() time.Time
}

// NewRegistry creates a Registry.
func NewRegistry(client *redisClient.Client, prefix string) *Registry {
	return &Registry{client: client, prefix: prefix, now: time.Now}
}

func (r *Registry) counterKey() string { return key(r.prefix, "registry", "counter") }
func (r *Registry) lastKey() string    { return key(r.prefix, "registry", "last_generated") }

// Get returns the whole registry. Missing fields read as zero / nil.
func (r *Registry) Get(ctx context.Context) (domain.GenerationRegistry, error) {
	reg := domain.NewGenerationRegistry()

	counters, err := r.client.HGetAll(ctx, r.counterKey()).Result()
	if err != nil {
		return reg, fmt.Errorf("registry counters: %w", err)
	}
	for field, raw := range counters {
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		reg.Counter[domain.CounterType(field)] = n
	}

	last, err := r.client.HGetAll(ctx, r.lastKey()).Result()
	if err != nil {
		return reg, fmt.Errorf("registry timestamps: %w", err)
	}
	for field, raw := range last {
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			continue
		}
		reg.LastGenerated[domain.CounterType(field)] = &ts
	}

	return reg, nil
}

// Counter returns the current counter for t.
func (r *Registry) Counter(ctx context.Context, t domain.CounterType) (int, error) {
	raw, err := r.client.HGet(ctx, r.counterKey(), t.String()).Result()
	if err != nil {
		if err == redisClient.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("registry counter %s: %w", t, err)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("registry counter %s: %w", t, err)
	}
	return n, nil
}

// Update sets the counter for t and stamps the generation time.
func (r *Registry) Update(ctx context.Context, t domain.CounterType, n int) error {
	_, err := r.client.TxPipelined(ctx, func(p redisClient.Pipeliner) error {
		p.HSet(ctx, r.counterKey(), t.String(), n)
		p.HSet(ctx, r.lastKey(), t.String(), r.now().UTC().Format(time.RFC3339Nano))
		return nil
	})
	if err != nil {
		return fmt.Errorf("registry update %s: %w", t, err)
	}
	return nil
}

// Reset zeroes the counter for t and clears its timestamp.
func (r *Registry) Reset(ctx context.Context, t domain.CounterType) error {
	_, err := r.client.TxPipelined(ctx, func(p redisClient.Pipeliner) error {
		p.HSet(ctx, r.counterKey(), t.String(), 0)
		p.HDel(ctx, r.lastKey(), t.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("registry reset %s: %w", t, err)
	}
	return nil
}
