package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
)

type AuthService struct {
	repo port.UserRepository
}

func NewAuthService(repo port.UserRepository) *AuthService {
	return &AuthService{repo}
}

func (as *AuthService) Registration(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	_, err := as.repo.GetByEmail(ctx, req.Email)

	if err == nil {
		return nil, domain.ErrEmailTaken
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := domain.User{
		UUID:              uuid.New(),
		Email:             req.Email,
		EncryptedPassword: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	savedUser, err := as.repo.Create(ctx, user)

	if err != nil {
		return nil, err
	}

	return &savedUser, nil
}

func (as *AuthService) Authenticate(ctx context.Context, req *request.SignInRequest) (*domain.User, error) {
	user, err := as.repo.GetByEmail(ctx, req.Email)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}

		slog.Error("Auth#Authenticate", "get_by_email", err)
		return nil, err
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &user, nil
}
