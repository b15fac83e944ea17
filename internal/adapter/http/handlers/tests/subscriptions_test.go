package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/handlers"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionRouter(svc *subscriptionServiceMock) *gin.Engine {
	router := gin.New()
	router.Use(middleware.LanguageMiddleware())

	handler := handlers.NewSubscriptionHandler(svc)
	router.POST("/subscribe", handler.Subscribe)
	router.POST("/unsubscribe", handler.Unsubscribe)

	return router
}

func TestSubscriptionHandler_Subscribe_Success(t *testing.T) {
	svc := new(subscriptionServiceMock)
	svc.On("Subscribe", mock.Anything, uint64(1), domain.FrequencyWeekly).Return(nil).Once()

	router := newSubscriptionRouter(svc)
	rec := doJSON(t, router, http.MethodPost, "/subscribe",
		`{"user_id":1,"frequency":"weekly"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Subscribed successfully", got.Message)
	svc.AssertExpectations(t)
}

func TestSubscriptionHandler_Subscribe_InvalidFrequency(t *testing.T) {
	svc := new(subscriptionServiceMock)
	router := newSubscriptionRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/subscribe",
		`{"user_id":1,"frequency":"hourly"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Subscribe")
}

func TestSubscriptionHandler_Subscribe_MissingUserID(t *testing.T) {
	svc := new(subscriptionServiceMock)
	router := newSubscriptionRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/subscribe", `{"frequency":"daily"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Subscribe")
}

func TestSubscriptionHandler_Unsubscribe_Success(t *testing.T) {
	svc := new(subscriptionServiceMock)
	svc.On("Unsubscribe", mock.Anything, uint64(1)).Return(nil).Once()

	router := newSubscriptionRouter(svc)
	rec := doJSON(t, router, http.MethodPost, "/unsubscribe", `{"user_id":1}`, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Unsubscribed successfully", got.Message)
	svc.AssertExpectations(t)
}

func TestSubscriptionHandler_Unsubscribe_MissingUserID(t *testing.T) {
	svc := new(subscriptionServiceMock)
	router := newSubscriptionRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/unsubscribe", `{}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Unsubscribe")
}
