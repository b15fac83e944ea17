package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
)

type SubscriptionHandler struct {
	subscriptionService ports.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
		)
		return
	}

	frequency := domain.SubscriptionFrequency(req.Frequency)
	if !domain.ValidSubscriptionFrequency(frequency) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
		)
		return
	}

	if err := h.subscriptionService.Subscribe(c.Request.Context(), req.UserID, frequency); err != nil {
		zap.L().Error("failed to subscribe user", zap.Uint64("user_id", req.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSubscribe, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Subscribed successfully"})
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
		)
		return
	}

	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), req.UserID); err != nil {
		zap.L().Error("failed to unsubscribe user", zap.Uint64("user_id", req.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUnsubscribe, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Unsubscribed successfully"})
}
