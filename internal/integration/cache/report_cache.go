// Package cache implements Redis-backed caching for derived data.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/my-wallet/backend/internal/application/adapter"
)

// reportCache implements adapter.ReportCache on Redis.
//
// Every data key embeds a per-user generation counter. Invalidation bumps the
// counter with a single INCR, which orphans all of the user's cached reports
// at once without a SCAN; the orphans expire with their TTL.
type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new Redis report cache instance.
func NewReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	return &reportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload for the key, or nil on a miss.
func (c *reportCache) Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error) {
	generation, err := c.generation(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, c.dataKey(userID, generation, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached report: %w", err)
	}
	return payload, nil
}

// Set stores the payload under the key with the configured TTL.
func (c *reportCache) Set(ctx context.Context, userID uuid.UUID, key string, payload []byte) error {
	generation, err := c.generation(ctx, userID)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, c.dataKey(userID, generation, key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached report: %w", err)
	}
	return nil
}

// Invalidate bumps the user's generation counter, orphaning every cached
// report written under the previous generation.
func (c *reportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, c.generationKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to bump report cache generation: %w", err)
	}
	return nil
}

// generation reads the user's current generation counter; absent means zero.
func (c *reportCache) generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	generation, err := c.client.Get(ctx, c.generationKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read report cache generation: %w", err)
	}
	return generation, nil
}

func (c *reportCache) generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("reports:%s:gen", userID)
}

func (c *reportCache) dataKey(userID uuid.UUID, generation int64, key string) string {
	return fmt.Sprintf("reports:%s:%d:%s", userID, generation, key)
}
