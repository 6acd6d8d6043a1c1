package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"orderflow/internal/domain"
	"orderflow/internal/review"
)

// RedisFeedSignal keeps a monotonically increasing counter per
// (restaurant, audience); polling clients compare versions to find out
// whether the notification feed changed.
type RedisFeedSignal struct {
	Client *redis.Client
}

func NewRedisFeedSignal(client *redis.Client) *RedisFeedSignal {
	return &RedisFeedSignal{Client: client}
}

func feedKey(restaurantID int, audience domain.Audience) string {
	return fmt.Sprintf("feed:%d:%s", restaurantID, audience)
}

func (s *RedisFeedSignal) Bump(ctx context.Context, restaurantID int, audience domain.Audience) error {
	return s.Client.Incr(ctx, feedKey(restaurantID, audience)).Err()
}

func (s *RedisFeedSignal) Version(ctx context.Context, restaurantID int, audience domain.Audience) (int64, error) {
	version, err := s.Client.Get(ctx, feedKey(restaurantID, audience)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return version, err
}

// RedisRatingCache holds duplicate-submission markers and the cached
// per-restaurant rating summary.
type RedisRatingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRatingCache(client *redis.Client, ttl time.Duration) *RedisRatingCache {
	return &RedisRatingCache{Client: client, TTL: ttl}
}

func (c *RedisRatingCache) MarkerKey(event *domain.RatingEvent) string {
	return fmt.Sprintf("rating:%s:%d:%d", event.Target, event.TargetID, event.OrderID)
}

func (c *RedisRatingCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisRatingCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

func summaryKey(restaurantID int) string {
	return fmt.Sprintf("ratings:summary:%d", restaurantID)
}

func (c *RedisRatingCache) GetSummary(ctx context.Context, restaurantID int) (*review.Summary, error) {
	payload, err := c.Client.Get(ctx, summaryKey(restaurantID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary review.Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RedisRatingCache) SetSummary(ctx context.Context, restaurantID int, summary review.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, summaryKey(restaurantID), payload, 24*time.Hour).Err()
}

var _ review.RatingCache = (*RedisRatingCache)(nil)
