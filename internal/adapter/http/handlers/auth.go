package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
)

type AuthHandler struct {
	userService ports.UserService
}

func NewAuthHandler(userService ports.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSignupPayload, lang),
		)
		return
	}

	if _, err := h.userService.Signup(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateUser, lang),
			)
			return
		}

		zap.L().Error("failed to sign up user", zap.String("username", req.Username), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSignup, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User created"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSignupPayload, lang),
		)
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log in user", zap.String("username", req.Username), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Message: "Login successful", UserID: user.ID})
}
