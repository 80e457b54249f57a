// Package cache provides the key-value stores the todo service reads
// through: a Redis-backed one for deployments and an in-process one for
// development and tests. Both implement port.TodoCache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todoapi/internal/core/domain"
)

type RedisTodoCache struct {
	rdb *redis.Client
}

func NewRedisTodoCache(rdb *redis.Client) *RedisTodoCache {
	return &RedisTodoCache{rdb: rdb}
}

// NewRedisClient connects and pings. The client is long-lived and safe
// for concurrent use.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)

	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

func (c *RedisTodoCache) Get(ctx context.Context, key string) ([]domain.Todo, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	var todos []domain.Todo

	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, false, err
	}

	return todos, true, nil
}

func (c *RedisTodoCache) Set(ctx context.Context, key string, todos []domain.Todo, ttl time.Duration) error {
	b, err := json.Marshal(todos)

	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func (c *RedisTodoCache) Del(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}
