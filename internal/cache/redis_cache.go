package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mkovalev/gain-planner/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps snapshots in Redis so multiple instances share one cache.
// The TTL matches the staleness window, so an expired key and a stale
// snapshot mean the same thing.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(host, port string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

func snapshotKey(userID string) string {
	return fmt.Sprintf("user:%s:snapshot", userID)
}

func (c *RedisCache) Get(ctx context.Context, userID string) (*domain.CalculationSnapshot, bool) {
	data, err := c.client.Get(ctx, snapshotKey(userID)).Bytes()
	if err != nil {
		// redis.Nil and transport errors both degrade to a miss.
		return nil, false
	}
	var snapshot domain.CalculationSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, false
	}
	return &snapshot, true
}

func (c *RedisCache) Set(ctx context.Context, userID string, snapshot *domain.CalculationSnapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	c.client.Set(ctx, snapshotKey(userID), data, c.ttl)
}

func (c *RedisCache) Invalidate(ctx context.Context, userID string) {
	c.client.Del(ctx, snapshotKey(userID))
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
