package handler

import (
	"errors"
	"net/http"

	. "todoapi/internal/adapter/http/helper"
	. "todoapi/internal/adapter/http/validation"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type UserHandler struct {
	svc    port.UserService
	Logger *otelzap.Logger
}

func NewUserHandler(svc port.UserService, logger *otelzap.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		Logger: logger,
	}
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userId, _ := middleware.CurrentUserId(c)

	user, err := h.svc.GetUserByID(ctx, userId)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			SendNotFoundError(c, "User not found")
			return
		}

		h.Logger.Ctx(ctx).Error("Failed to get user",
			zap.Error(err),
			zap.Int("user_id", userId),
		)

		SendInternalError(c, "Error getting user")
		return
	}

	c.JSON(http.StatusOK, response.NewUserResponse(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	userId, _ := middleware.CurrentUserId(c)

	var req request.EditUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(req); err != nil {
		SendValidationError(c, err)
		return
	}

	patch := domain.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	user, err := h.svc.UpdateByID(ctx, userId, patch)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			SendNotFoundError(c, "User not found")
			return
		}

		h.Logger.Ctx(ctx).Error("Failed to update user",
			zap.Error(err),
			zap.Int("user_id", userId),
		)

		SendInternalError(c, "Error updating user")
		return
	}

	c.JSON(http.StatusOK, response.NewUserResponse(user))
}
