package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RecentOutcomes is the bounded log of recently served outcome tokens,
// used by the scorer to de-prioritize repeats. The log is process-wide;
// it only affects variety, not correctness.
type RecentOutcomes interface {
	Recent(ctx context.Context) ([]string, error)
	Push(ctx context.Context, token string) error
}

const recentKey = "quiz:recent"

type recentOutcomes struct {
	client *redis.Client
	limit  int64
}

func NewRecentOutcomes(client *redis.Client, limit int) RecentOutcomes {
	return &recentOutcomes{
		client: client,
		limit:  int64(limit),
	}
}

func (c *recentOutcomes) Recent(ctx context.Context) ([]string, error) {
	tokens, err := c.client.LRange(ctx, recentKey, 0, c.limit-1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	return tokens, err
}

func (c *recentOutcomes) Push(ctx context.Context, token string) error {
	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, recentKey, token)
	pipe.LTrim(ctx, recentKey, 0, c.limit-1)
	_, err := pipe.Exec(ctx)
	return err
}
