package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/core/domain"
)

type UserRepository struct {
	db *postgres.DB
}

func NewUserRepository(db *postgres.DB) *UserRepository {
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

	return r.scanRow(r.db.Pool.QueryRow(ctx, query, args...))
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

	return r.scanRow(r.db.Pool.QueryRow(ctx, query, args...))
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query, args, err := r.db.QueryBuilder.
		Insert("users").
		Columns("uuid", "email", "encrypted_password", "first_name", "last_name", "created_at", "updated_at").
		Values(user.UUID, user.Email, user.EncryptedPassword, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	if err := r.db.Pool.QueryRow(ctx, query, args...).Scan(&user.ID); err != nil {
		return domain.User{}, err
	}

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

	query, args, err := builder.
		Suffix("RETURNING id, uuid, email, encrypted_password, first_name, last_name, created_at, updated_at").
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return r.scanRow(r.db.Pool.QueryRow(ctx, query, args...))
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Pool.Exec(ctx, "DELETE FROM users")

	return err
}

func (r *UserRepository) scanRow(row pgx.Row) (domain.User, error) {
	var user domain.User

	err := row.Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}

		return domain.User{}, err
	}

	return user, nil
}
