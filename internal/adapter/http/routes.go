package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskforge/internal/adapter/http/handlers"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	users ports.UserService,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	r.POST("/subscribe", subscriptionHandler.Subscribe)
	r.POST("/unsubscribe", subscriptionHandler.Unsubscribe)

	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireUser(users))
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		// Static segments win over :id, so batch_delete never parses as a task id.
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.DELETE("/batch_delete", taskHandler.BatchDeleteTasks)
		tasks.POST("/restore_last", taskHandler.RestoreLastDeleted)
	}
}
