package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskforge/internal/adapter/db"
	httpadapter "taskforge/internal/adapter/http"
	"taskforge/internal/adapter/http/handlers"
	httpmiddleware "taskforge/internal/adapter/http/middleware"
	"taskforge/internal/adapter/memory"
	appservice "taskforge/internal/app/service"
	"taskforge/internal/config"
	"taskforge/internal/core/ports"
	"taskforge/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	var (
		taskRepository       ports.TaskRepository
		userDirectory        ports.UserDirectory
		subscriptionRegistry ports.SubscriptionRegistry
		healthHandler        *handlers.HealthHandler
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Info("using in-memory store")
		taskRepository = memory.NewTaskStore()
		userDirectory = memory.NewUserStore()
		subscriptionRegistry = memory.NewSubscriptionStore()
		healthHandler = handlers.NewHealthHandler(nil)
	default:
		db, err := dbadapter.ConnectDB(cfg)
		if err != nil {
			logger.Fatal("failed to connect to mysql", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close mysql connection", zap.Error(err))
			}
		}()
		taskRepository = dbadapter.NewTaskRepository(db)
		userDirectory = dbadapter.NewUserRepository(db)
		subscriptionRegistry = dbadapter.NewSubscriptionRepository(db)
		healthHandler = handlers.NewHealthHandler(db)
	}

	userService := appservice.NewUserService(userDirectory, cfg.BcryptCost)
	taskService := appservice.NewTaskService(taskRepository)
	subscriptionService := appservice.NewSubscriptionService(subscriptionRegistry)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.MetricsMiddleware(),
	)
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(
		r,
		userService,
		healthHandler,
		handlers.NewAuthHandler(userService),
		handlers.NewTaskHandler(taskService),
		handlers.NewSubscriptionHandler(subscriptionService),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
