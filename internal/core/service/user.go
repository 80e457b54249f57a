package service

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo}
}

func (us *UserService) GetUserByID(ctx context.Context, id int) (domain.User, error) {
	user, err := us.repo.GetByID(ctx, id)

	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (us *UserService) UpdateByID(ctx context.Context, id int, patch domain.UserPatch) (domain.User, error) {
	if patch.IsEmpty() {
		return us.repo.GetByID(ctx, id)
	}

	user, err := us.repo.Update(ctx, id, patch)

	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
