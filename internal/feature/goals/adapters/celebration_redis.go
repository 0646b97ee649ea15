package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// celebrationTTL はマーカーの保持期間です。当日の重複排除にしか使わないため
// 2セッション分あれば十分です。
const celebrationTTL = 48 * time.Hour

// CelebrationRedis implements usecase.CelebrationMarker using Redis.
// SETNX gives one winner per user and trading day even when multiple
// devices poll the quest progress at the same time.
type CelebrationRedis struct {
	client *redis.Client
	prefix string
}

// NewCelebrationRedis creates a new CelebrationRedis instance.
// If prefix is empty, it uses "celebrated".
func NewCelebrationRedis(client *redis.Client, prefix string) *CelebrationRedis {
	if prefix == "" {
		prefix = "celebrated"
	}
	return &CelebrationRedis{client: client, prefix: prefix}
}

// markerKey returns the Redis key for a user's trading day marker.
func (r *CelebrationRedis) markerKey(userID uint, day time.Time) string {
	return fmt.Sprintf("%s:%d:%s", r.prefix, userID, day.Format("2006-01-02"))
}

// MarkCelebrated records the trading day as celebrated for the user.
// It returns true only for the first call per user and day.
func (r *CelebrationRedis) MarkCelebrated(ctx context.Context, userID uint, day time.Time) (bool, error) {
	return r.client.SetNX(ctx, r.markerKey(userID, day), 1, celebrationTTL).Result()
}
