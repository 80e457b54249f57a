package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"todoapi/internal/core/domain"
)

// MemoryTodoCache keeps lists in-process. Same TTL semantics as the
// Redis adapter, minus the network hop; the default target when no
// REDIS_URL is configured.
type MemoryTodoCache struct {
	c *gocache.Cache
}

func NewMemoryTodoCache() *MemoryTodoCache {
	return &MemoryTodoCache{c: gocache.New(5*time.Minute, 10*time.Minute)}
}

func (m *MemoryTodoCache) Get(ctx context.Context, key string) ([]domain.Todo, bool, error) {
	v, found := m.c.Get(key)

	if !found {
		return nil, false, nil
	}

	return v.([]domain.Todo), true, nil
}

func (m *MemoryTodoCache) Set(ctx context.Context, key string, todos []domain.Todo, ttl time.Duration) error {
	m.c.Set(key, todos, ttl)
	return nil
}

func (m *MemoryTodoCache) Del(ctx context.Context, key string) error {
	m.c.Delete(key)
	return nil
}
