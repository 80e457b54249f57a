package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
)

type TodoRepository struct {
	db *sqlite.DB
}

func NewTodoRepository(db *sqlite.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) GetAllByUser(ctx context.Context, userId int) ([]domain.Todo, error) {
	query, args, err := r.db.QueryBuilder.
		Select("id", "uuid", "title", "description", "completed", "user_id", "created_at", "updated_at").
		From("todos").
		Where("user_id = ?", userId).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	todos := make([]domain.Todo, 0)

	for rows.Next() {
		var todo domain.Todo

		if err := scanTodo(rows, &todo); err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

// GetByID scopes the lookup to the owner, so a todo owned by another
// user is reported as not found.
func (r *TodoRepository) GetByID(ctx context.Context, userId int, todoId int) (domain.Todo, error) {
	query, args, err := r.db.QueryBuilder.
		Select("id", "uuid", "title", "description", "completed", "user_id", "created_at", "updated_at").
		From("todos").
		Where("id = ? AND user_id = ?", todoId, userId).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	var todo domain.Todo

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanTodo(row, &todo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.ErrNotFound
		}

		return domain.Todo{}, err
	}

	return todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query, args, err := r.db.QueryBuilder.
		Insert("todos").
		Columns("uuid", "title", "description", "completed", "user_id", "created_at", "updated_at").
		Values(todo.UUID, todo.Title, todo.Description, todo.Completed, todo.UserId, todo.CreatedAt, todo.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.Todo{}, err
	}

	todo.ID = int(id)

	return todo, nil
}

func (r *TodoRepository) Update(ctx context.Context, userId int, todoId int, patch domain.TodoPatch) (domain.Todo, error) {
	builder := r.db.QueryBuilder.
		Update("todos").
		Set("updated_at", time.Now().UTC()).
		Where("id = ? AND user_id = ?", todoId, userId)

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}

	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}

	if patch.Completed != nil {
		builder = builder.Set("completed", *patch.Completed)
	}

	query, args, err := builder.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return domain.Todo{}, err
	}

	if affected == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}

	return r.GetByID(ctx, userId, todoId)
}

func (r *TodoRepository) Delete(ctx context.Context, userId int, todoId int) error {
	query, args, err := r.db.QueryBuilder.
		Delete("todos").
		Where("id = ? AND user_id = ?", todoId, userId).
		ToSql()

	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *TodoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM todos")

	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner, todo *domain.Todo) error {
	return row.Scan(
		&todo.ID,
		&todo.UUID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.UserId,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
}
