package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	return rdb
}

func TestReportCache_RoundTrip(t *testing.T) {
	rdb := getRedisClient(t)
	defer rdb.Close()

	ctx := context.Background()
	cache := NewRedisAdapter(rdb, time.Minute)

	key := "test:transactions:summary"
	defer rdb.Del(ctx, reportKeyPrefix+key)

	payload := []byte(`{"TotalCustomers":2}`)
	require.NoError(t, cache.SetReport(ctx, key, payload))

	got, err := cache.GetReport(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestReportCache_MissReturnsNil(t *testing.T) {
	rdb := getRedisClient(t)
	defer rdb.Close()

	cache := NewRedisAdapter(rdb, time.Minute)

	got, err := cache.GetReport(context.Background(), "test:no-such-report")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReportCache_Invalidate(t *testing.T) {
	rdb := getRedisClient(t)
	defer rdb.Close()

	ctx := context.Background()
	cache := NewRedisAdapter(rdb, time.Minute)

	keys := []string{"test:inv:summary", "test:inv:chart"}
	for _, key := range keys {
		require.NoError(t, cache.SetReport(ctx, key, []byte("x")))
	}

	require.NoError(t, cache.InvalidateReports(ctx, keys...))

	for _, key := range keys {
		got, err := cache.GetReport(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}
