package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"whatshouldweeat/internal/model"
)

// In-memory implementations used when REDIS_ADDR is unset, so the
// service runs with zero infrastructure. Backed by go-cache for the
// TTL'd entries; the recent-outcomes log is a plain bounded slice.

type memorySessionCache struct {
	store *gocache.Cache
}

func NewMemorySessionCache() SessionCache {
	return &memorySessionCache{
		store: gocache.New(sessionTTL, 10*time.Minute),
	}
}

func (c *memorySessionCache) Set(_ context.Context, session *model.Session) error {
	c.store.Set(session.ID, session, sessionTTL)
	return nil
}

func (c *memorySessionCache) Get(_ context.Context, id string) (*model.Session, error) {
	v, found := c.store.Get(id)
	if !found {
		return nil, nil
	}
	return v.(*model.Session), nil
}

func (c *memorySessionCache) Delete(_ context.Context, id string) error {
	c.store.Delete(id)
	return nil
}

type memoryRecentOutcomes struct {
	mu     sync.Mutex
	tokens []string
	limit  int
}

func NewMemoryRecentOutcomes(limit int) RecentOutcomes {
	return &memoryRecentOutcomes{limit: limit}
}

func (c *memoryRecentOutcomes) Recent(_ context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.tokens))
	copy(out, c.tokens)
	return out, nil
}

func (c *memoryRecentOutcomes) Push(_ context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = append([]string{token}, c.tokens...)
	if len(c.tokens) > c.limit {
		c.tokens = c.tokens[:c.limit]
	}
	return nil
}

type memoryUsageCache struct {
	store *gocache.Cache
}

func NewMemoryUsageCache() UsageCache {
	return &memoryUsageCache{
		store: gocache.New(48*time.Hour, time.Hour),
	}
}

func (c *memoryUsageCache) key(clientID string) string {
	return fmt.Sprintf("%s:%s", clientID, time.Now().UTC().Format("2006-01-02"))
}

func (c *memoryUsageCache) Increment(_ context.Context, clientID string) (int64, error) {
	key := c.key(clientID)
	// Add errors if the key already exists, which is fine
	_ = c.store.Add(key, int64(0), 48*time.Hour)
	return c.store.IncrementInt64(key, 1)
}

func (c *memoryUsageCache) Count(_ context.Context, clientID string) (int64, error) {
	v, found := c.store.Get(c.key(clientID))
	if !found {
		return 0, nil
	}
	return v.(int64), nil
}
