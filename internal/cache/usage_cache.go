package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// UsageCache tracks per-client daily usage counters for the free tier
type UsageCache interface {
	Increment(ctx context.Context, clientID string) (int64, error)
	Count(ctx context.Context, clientID string) (int64, error)
}

type usageCache struct {
	client *redis.Client
}

func NewUsageCache(client *redis.Client) UsageCache {
	return &usageCache{
		client: client,
	}
}

func (c *usageCache) key(clientID string) string {
	return fmt.Sprintf("quiz:usage:%s:%s", clientID, time.Now().UTC().Format("2006-01-02"))
}

func (c *usageCache) Increment(ctx context.Context, clientID string) (int64, error) {
	key := c.key(clientID)
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 48*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (c *usageCache) Count(ctx context.Context, clientID string) (int64, error) {
	n, err := c.client.Get(ctx, c.key(clientID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
