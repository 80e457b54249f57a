package port

import (
	"context"

	"todoapi/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, id int, patch domain.UserPatch) (domain.User, error)

	// DeleteAll wipes the table. Test/reset tooling only.
	DeleteAll(ctx context.Context) error
}

type UserService interface {
	GetUserByID(ctx context.Context, id int) (domain.User, error)
	UpdateByID(ctx context.Context, id int, patch domain.UserPatch) (domain.User, error)
}
