package http

import (
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository
	Cache    port.TodoCache

	AuthUseCase port.AuthService
	UserUseCase port.UserService
	TodoUseCase port.TodoService

	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	TodoHandler *handler.TodoHandler
}

func NewContainer(
	userRepo port.UserRepository,
	todoRepo port.TodoRepository,
	cache port.TodoCache,
	probe port.Telemetry,
	logger *otelzap.Logger,
) *Container {
	authSvc := service.NewAuthService(userRepo)
	userSvc := service.NewUserService(userRepo)
	todoSvc := service.NewTodoService(todoRepo, cache, probe)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,
		Cache:    cache,

		AuthUseCase: authSvc,
		UserUseCase: userSvc,
		TodoUseCase: todoSvc,

		AuthHandler: handler.NewAuthHandler(authSvc, logger),
		UserHandler: handler.NewUserHandler(userSvc, logger),
		TodoHandler: handler.NewTodoHandler(todoSvc, logger),
	}
}
