package port

import (
	"context"
	"time"

	"todoapi/internal/core/domain"
)

// TodoCache is the key-value store the todo service reads through.
// Get distinguishes a miss (found == false, err == nil) from a store
// failure: failures propagate to the caller, a miss falls back to the
// repository. No eviction or capacity guarantees beyond TTL expiry are
// assumed.
type TodoCache interface {
	Get(ctx context.Context, key string) (todos []domain.Todo, found bool, err error)
	Set(ctx context.Context, key string, todos []domain.Todo, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
