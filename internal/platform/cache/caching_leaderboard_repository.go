// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"journal_backend/internal/feature/leaderboard/domain/entity"
	"journal_backend/internal/feature/leaderboard/usecase"
)

// CachingLeaderboardRepository decorates a LeaderboardRepository with Redis
// caching. It implements the decorator pattern, transparently adding caching
// without modifying the underlying repository.
//
// The leaderboard only moves when trades change, and viewers tolerate staleness
// within a session, so entries are cached until the next session rollover.
type CachingLeaderboardRepository struct {
	inner     usecase.LeaderboardRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingLeaderboardRepositoryがLeaderboardRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.LeaderboardRepository = (*CachingLeaderboardRepository)(nil)

// NewCachingLeaderboardRepository decorates a LeaderboardRepository with Redis
// caching. If ttl is 0, entries live until the next session rollover.
// If namespace is empty, it uses "leaderboard".
func NewCachingLeaderboardRepository(rdb *redis.Client, ttl time.Duration, inner usecase.LeaderboardRepository, namespace string) *CachingLeaderboardRepository {
	if namespace == "" {
		namespace = "leaderboard"
	}
	return &CachingLeaderboardRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// TopByNetProfit retrieves the ranking, checking cache first then falling back
// to the database.
func (c *CachingLeaderboardRepository) TopByNetProfit(ctx context.Context, limit int) ([]entity.Row, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.TopByNetProfit(ctx, limit)
	}

	key := c.cacheKey(limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Row
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.TopByNetProfit(ctx, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		ttl := c.ttl
		if ttl <= 0 {
			ttl = TimeUntilNextSession()
		}
		_ = c.rdb.Set(ctx, key, b, ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingLeaderboardRepository) cacheKey(limit int) string {
	return fmt.Sprintf("%s:top:%d", c.namespace, limit)
}
