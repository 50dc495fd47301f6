package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const reportKeyPrefix = "report:"

// DefaultReportTTL bounds how stale a cached report can get. Reports are also
// invalidated on every mutation, so the TTL only matters when an invalidation
// is lost.
const DefaultReportTTL = 30 * time.Second

// RedisAdapter caches serialized report payloads in front of the aggregation
// queries.
type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAdapter(client *redis.Client, ttl time.Duration) *RedisAdapter {
	if ttl <= 0 {
		ttl = DefaultReportTTL
	}
	return &RedisAdapter{client: client, ttl: ttl}
}

func (r *RedisAdapter) GetReport(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, reportKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *RedisAdapter) SetReport(ctx context.Context, key string, payload []byte) error {
	return r.client.Set(ctx, reportKeyPrefix+key, payload, r.ttl).Err()
}

func (r *RedisAdapter) InvalidateReports(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = reportKeyPrefix + key
	}
	return r.client.Del(ctx, prefixed...).Err()
}
