package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"whatshouldweeat/internal/cache"
	"whatshouldweeat/internal/model"
	"whatshouldweeat/internal/repository"
)

var ErrQuotaExceeded = errors.New("free daily limit reached")

// UsageService tracks quiz completions per client and enforces the free
// daily quota. Session records land in Mongo when it is configured;
// the counter alone is enough for quota enforcement.
type UsageService struct {
	usage    cache.UsageCache
	sessions repository.SessionRepo // may be nil when Mongo is not configured
	limit    int64
}

// NewUsageService creates a new usage service
func NewUsageService(usage cache.UsageCache, sessions repository.SessionRepo, limit int64) *UsageService {
	return &UsageService{
		usage:    usage,
		sessions: sessions,
		limit:    limit,
	}
}

// TrackCompletion increments the client's daily counter and persists
// the completed session record
func (s *UsageService) TrackCompletion(ctx context.Context, clientID string, record *model.SessionRecord) error {
	if _, err := s.usage.Increment(ctx, clientID); err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	if s.sessions != nil && record != nil {
		if err := s.sessions.Create(ctx, record); err != nil {
			// Bookkeeping only; the recommendation already went out
			logrus.WithError(err).Warn("failed to persist session record")
		}
	}

	return nil
}

// Usage returns the client's counter against the daily limit
func (s *UsageService) Usage(ctx context.Context, clientID string) (model.UsageData, error) {
	count, err := s.usage.Count(ctx, clientID)
	if err != nil {
		return model.UsageData{}, fmt.Errorf("failed to read usage: %w", err)
	}

	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return model.UsageData{
		Count:     count,
		Limit:     s.limit,
		Remaining: remaining,
	}, nil
}

// CheckQuota returns ErrQuotaExceeded once the client has used up its
// free completions for the day
func (s *UsageService) CheckQuota(ctx context.Context, clientID string) error {
	count, err := s.usage.Count(ctx, clientID)
	if err != nil {
		// Fail open: a cache hiccup should not lock users out
		logrus.WithError(err).Warn("failed to check usage quota")
		return nil
	}
	if count >= s.limit {
		return ErrQuotaExceeded
	}
	return nil
}
