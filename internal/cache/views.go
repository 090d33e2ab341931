package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// View cache keys. Writes invalidate the views that depend on the written
// entity; reads go through Get/Set with a short TTL.
const (
	KeyCoachDashboard = "view:dashboard:coach"
	KeyWorkoutList    = "view:workouts"
)

func KeyAthleteDashboard(userID int64) string {
	return fmt.Sprintf("view:dashboard:athlete:%d", userID)
}

// ViewStore is the invalidation contract mutation handlers depend on.
type ViewStore interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

// NoopViewStore disables caching; every Get misses.
type NoopViewStore struct{}

func (NoopViewStore) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopViewStore) Set(context.Context, string, any) error         { return nil }
func (NoopViewStore) Invalidate(context.Context, ...string) error    { return nil }

// RedisViewStore caches rendered view aggregates as JSON in Redis.
type RedisViewStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisViewStore(rdb *redis.Client, ttl time.Duration) *RedisViewStore {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisViewStore{rdb: rdb, ttl: ttl}
}

func (s *RedisViewStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisViewStore) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, s.ttl).Err()
}

func (s *RedisViewStore) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}
