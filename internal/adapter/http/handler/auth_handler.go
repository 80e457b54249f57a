package handler

import (
	"errors"
	"net/http"

	. "todoapi/internal/adapter/http/helper"
	. "todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc    port.AuthService
	Logger *otelzap.Logger
}

func NewAuthHandler(svc port.AuthService, logger *otelzap.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		Logger: logger,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req request.SignUpRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(req); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := h.svc.Registration(ctx, &req)

	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			SendBadRequestError(c, "email", "Email already taken")
			return
		}

		h.Logger.Ctx(ctx).Error("Signup failed",
			zap.Error(err),
			zap.String("email", req.Email),
		)

		SendInternalError(c, "Error creating user")
		return
	}

	c.JSON(http.StatusCreated, response.NewUserResponse(*user))
}

func (h *AuthHandler) Signin(c *gin.Context) {
	ctx := c.Request.Context()

	var req request.SignInRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(req); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := h.svc.Authenticate(ctx, &req)

	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			SendUnauthorizedError(c, "Invalid credentials")
			return
		}

		h.Logger.Ctx(ctx).Error("Signin failed", zap.Error(err))

		SendInternalError(c, "Error authenticating user")
		return
	}

	token, err := auth.CreateJwtTokenForUser(user.ID)

	if err != nil {
		h.Logger.Ctx(ctx).Error("Token generation failed",
			zap.Error(err),
			zap.Int("user_id", user.ID),
		)

		SendInternalError(c, "Error generating token")
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{AccessToken: token})
}
