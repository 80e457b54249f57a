package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
)

type UserRepository struct {
	db *sqlite.DB
}

func NewUserRepository(db *sqlite.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userId int) (domain.User, error) {
	query, args, err := r.db.QueryBuilder.
		Select("id", "uuid", "email", "encrypted_password", "first_name", "last_name", "created_at", "updated_at").
		From("users").
		Where("id = ?", userId).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return r.scanOne(ctx, query, args)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query, args, err := r.db.QueryBuilder.
		Select("id", "uuid", "email", "encrypted_password", "first_name", "last_name", "created_at", "updated_at").
		From("users").
		Where("email = ?", email).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return r.scanOne(ctx, query, args)
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query, args, err := r.db.QueryBuilder.
		Insert("users").
		Columns("uuid", "email", "encrypted_password", "first_name", "last_name", "created_at", "updated_at").
		Values(user.UUID, user.Email, user.EncryptedPassword, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.User{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.User{}, err
	}

	user.ID = int(id)

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, userId int, patch domain.UserPatch) (domain.User, error) {
	builder := r.db.QueryBuilder.
		Update("users").
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", userId)

	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}

	if patch.FirstName != nil {
		builder = builder.Set("first_name", *patch.FirstName)
	}

	if patch.LastName != nil {
		builder = builder.Set("last_name", *patch.LastName)
	}

	query, args, err := builder.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.User{}, err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return domain.User{}, err
	}

	if affected == 0 {
		return domain.User{}, domain.ErrNotFound
	}

	return r.GetByID(ctx, userId)
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users")

	return err
}

func (r *UserRepository) scanOne(ctx context.Context, query string, args []any) (domain.User, error) {
	var user domain.User

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.UUID,
		&user.Email,
		&user.EncryptedPassword,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}

		return domain.User{}, err
	}

	return user, nil
}
