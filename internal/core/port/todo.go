package port

import (
	"context"

	"todoapi/internal/core/domain"
)

type TodoRepository interface {
	GetAllByUser(ctx context.Context, userId int) ([]domain.Todo, error)
	GetByID(ctx context.Context, userId int, todoId int) (domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, userId int, todoId int, patch domain.TodoPatch) (domain.Todo, error)
	Delete(ctx context.Context, userId int, todoId int) error

	// DeleteAll wipes the table. Test/reset tooling only.
	DeleteAll(ctx context.Context) error
}

type TodoService interface {
	GetAllTodos(ctx context.Context, userId int) ([]domain.Todo, error)
	GetTodoByID(ctx context.Context, userId int, todoId int) (domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	UpdateByID(ctx context.Context, userId int, todoId int, patch domain.TodoPatch) (domain.Todo, error)
	DeleteByID(ctx context.Context, userId int, todoId int) error
}
