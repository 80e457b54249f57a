package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	"todoapi/internal/core/telemetry"
)

// ListCacheTTL is how long a cached per-user todo list stays valid.
const ListCacheTTL = 60 * time.Second

// ListCacheKey derives the cache key for a user's todo list. One key per
// user, never shared across users.
func ListCacheKey(userId int) string {
	return "user:" + strconv.Itoa(userId) + ":todos"
}

// TodoService reads the per-user list through the cache and writes
// through the repository. Writes do not invalidate the cached list:
// after a create, edit, or delete the list stays stale for up to
// ListCacheTTL.
type TodoService struct {
	repo  port.TodoRepository
	cache port.TodoCache
	probe port.Telemetry
}

func NewTodoService(repo port.TodoRepository, cache port.TodoCache, probe port.Telemetry) *TodoService {
	if probe == nil {
		probe = telemetry.NewNoOpProbe()
	}

	return &TodoService{repo: repo, cache: cache, probe: probe}
}

func (ts *TodoService) GetAllTodos(ctx context.Context, userId int) ([]domain.Todo, error) {
	ctx, span := ts.probe.StartServiceSpan(ctx, "todo", "GetAllTodos", userId, nil)
	defer span.End()

	key := ListCacheKey(userId)

	cached, found, err := ts.cache.Get(ctx, key)

	if err != nil {
		// A cache outage is not a miss. Surface it instead of hammering
		// the store behind the caller's back.
		ts.probe.RecordError(ctx, "todo.GetAllTodos", err)
		return nil, err
	}

	if found {
		ts.probe.RecordCacheHit(ctx, key)
		span.SetAttributes(attribute.Int("todo.count", len(cached)))

		return cached, nil
	}

	ts.probe.RecordCacheMiss(ctx, key)

	todos, err := ts.repo.GetAllByUser(ctx, userId)

	if err != nil {
		ts.probe.RecordError(ctx, "todo.GetAllTodos", err)
		return nil, err
	}

	if todos == nil {
		// An empty list is a valid cached value.
		todos = make([]domain.Todo, 0)
	}

	if err := ts.cache.Set(ctx, key, todos, ListCacheTTL); err != nil {
		ts.probe.RecordError(ctx, "todo.GetAllTodos", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("todo.count", len(todos)))

	return todos, nil
}

func (ts *TodoService) GetTodoByID(ctx context.Context, userId int, todoId int) (domain.Todo, error) {
	// Point reads bypass the list cache. Ownership is part of the lookup
	// predicate, so a foreign todo is the same NotFound as a missing one.
	return ts.repo.GetByID(ctx, userId, todoId)
}

func (ts *TodoService) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, span := ts.probe.StartServiceSpan(ctx, "todo", "Create", todo.UserId, nil)
	defer span.End()

	now := time.Now()

	newTodo := domain.Todo{
		UUID:        uuid.New(),
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   false,
		UserId:      todo.UserId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	todo, err := ts.repo.Create(ctx, newTodo)

	if err != nil {
		slog.Error("Todo#Create repository failed", "error", err, "title", newTodo.Title)
		ts.probe.RecordError(ctx, "todo.Create", err)

		return domain.Todo{}, err
	}

	return todo, nil
}

func (ts *TodoService) UpdateByID(ctx context.Context, userId int, todoId int, patch domain.TodoPatch) (domain.Todo, error) {
	ctx, span := ts.probe.StartServiceSpan(ctx, "todo", "UpdateByID", userId, []attribute.KeyValue{
		attribute.Int("todo.id", todoId),
	})
	defer span.End()

	if patch.IsEmpty() {
		return ts.repo.GetByID(ctx, userId, todoId)
	}

	todo, err := ts.repo.Update(ctx, userId, todoId, patch)

	if err != nil {
		ts.probe.RecordError(ctx, "todo.UpdateByID", err)
		return domain.Todo{}, err
	}

	return todo, nil
}

func (ts *TodoService) DeleteByID(ctx context.Context, userId int, todoId int) error {
	ctx, span := ts.probe.StartServiceSpan(ctx, "todo", "DeleteByID", userId, []attribute.KeyValue{
		attribute.Int("todo.id", todoId),
	})
	defer span.End()

	if err := ts.repo.Delete(ctx, userId, todoId); err != nil {
		ts.probe.RecordError(ctx, "todo.DeleteByID", err)
		return err
	}

	return nil
}
