package handler

import (
	"errors"
	"net/http"
	"strconv"

	. "todoapi/internal/adapter/http/helper"
	. "todoapi/internal/adapter/http/validation"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	. "todoapi/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type TodoHandler struct {
	svc    port.TodoService
	Logger *otelzap.Logger
}

func NewTodoHandler(svc port.TodoService, logger *otelzap.Logger) *TodoHandler {
	return &TodoHandler{
		svc:    svc,
		Logger: logger,
	}
}

func (h *TodoHandler) GetAllTodos(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.todo.GetAllTodos", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	userId, _ := middleware.CurrentUserId(c)

	span.SetAttributes(attribute.Int("user.id", userId))

	todos, err := h.svc.GetAllTodos(ctx, userId)

	if err != nil {
		AddSpanError(span, err)

		h.Logger.Ctx(ctx).Error("Failed to get todos",
			zap.Error(err),
			zap.Int("user_id", userId),
		)

		SendInternalError(c, "Error getting todos")
		return
	}

	c.JSON(http.StatusOK, response.NewTodoListResponse(todos))
}

func (h *TodoHandler) GetTodoByID(c *gin.Context) {
	ctx := c.Request.Context()

	userId, _ := middleware.CurrentUserId(c)

	todoId, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid todo id")
		return
	}

	todo, err := h.svc.GetTodoByID(ctx, userId, todoId)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			SendNotFoundError(c, "Todo not found")
			return
		}

		h.Logger.Ctx(ctx).Error("Failed to get todo",
			zap.Error(err),
			zap.Int("user_id", userId),
			zap.Int("todo_id", todoId),
		)

		SendInternalError(c, "Error getting todo")
		return
	}

	c.JSON(http.StatusOK, response.NewTodoResponse(todo))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	userId, _ := middleware.CurrentUserId(c)

	var req request.CreateTodoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(req); err != nil {
		SendValidationError(c, err)
		return
	}

	todo, err := h.svc.Create(ctx, domain.Todo{
		Title:       req.Title,
		Description: req.Description,
		UserId:      userId,
	})

	if err != nil {
		h.Logger.Ctx(ctx).Error("Failed to create todo",
			zap.Error(err),
			zap.Int("user_id", userId),
		)

		SendInternalError(c, "Error creating todo")
		return
	}

	c.JSON(http.StatusCreated, response.NewTodoResponse(todo))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	userId, _ := middleware.CurrentUserId(c)

	todoId, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid todo id")
		return
	}

	var req request.EditTodoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(req); err != nil {
		SendValidationError(c, err)
		return
	}

	patch := domain.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	todo, err := h.svc.UpdateByID(ctx, userId, todoId, patch)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			SendNotFoundError(c, "Todo not found")
			return
		}

		h.Logger.Ctx(ctx).Error("Failed to update todo",
			zap.Error(err),
			zap.Int("user_id", userId),
			zap.Int("todo_id", todoId),
		)

		SendInternalError(c, "Error updating todo")
		return
	}

	c.JSON(http.StatusOK, response.NewTodoResponse(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	ctx := c.Request.Context()

	userId, _ := middleware.CurrentUserId(c)

	todoId, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid todo id")
		return
	}

	if err := h.svc.DeleteByID(ctx, userId, todoId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			SendNotFoundError(c, "Todo not found")
			return
		}

		h.Logger.Ctx(ctx).Error("Failed to delete todo",
			zap.Error(err),
			zap.Int("user_id", userId),
			zap.Int("todo_id", todoId),
		)

		SendInternalError(c, "Error deleting todo")
		return
	}

	c.Status(http.StatusNoContent)
}
