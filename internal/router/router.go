package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	// swaggerFiles "github.com/swaggo/files"
	// ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"status-service/internal/config"
	"status-service/internal/emoji"
	"status-service/internal/handler"
	"status-service/internal/i18n"
	"status-service/internal/middleware"
	"status-service/internal/repository"
	"status-service/internal/service"
)

// Setup wires repositories, services and handlers into the gin engine.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.Metrics())

	// Initialize repositories
	statusRepo := repository.NewStatusRepository(db)

	// Initialize services
	translator := i18n.NewTranslator()
	predefinedService := service.NewPredefinedStatusService(translator)
	statusService := service.NewStatusService(
		statusRepo,
		service.SystemClock{},
		predefinedService,
		emoji.NewValidator(),
		redisClient,
		logger,
	)

	// Initialize validator
	validator := middleware.NewAuthServiceValidator(cfg.Auth.ServiceURL, cfg.Auth.SecretKey, logger)

	// Initialize handlers
	statusHandler := handler.NewStatusHandler(statusService, predefinedService, logger)
	predefinedHandler := handler.NewPredefinedStatusHandler(predefinedService)
	wsHandler := handler.NewWSHandler(redisClient, logger)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Health endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation (disabled for faster builds)
	// r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes with base path
	api := r.Group(cfg.Server.BasePath)
	{
		// Health under base path
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// Catalog is public read-only data
		api.GET("/predefined_statuses", predefinedHandler.ListPredefinedStatuses)

		// Status event stream
		api.GET("/ws", wsHandler.HandleStatusWebSocket)

		// Authenticated routes
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(validator))
		{
			// Own status
			authenticated.GET("/user_status", statusHandler.GetOwnStatus)
			authenticated.DELETE("/user_status", statusHandler.DeleteStatus)
			authenticated.PUT("/user_status/status", statusHandler.SetStatus)
			authenticated.DELETE("/user_status/status", statusHandler.ClearStatus)
			authenticated.PUT("/user_status/message/predefined", statusHandler.SetPredefinedMessage)
			authenticated.PUT("/user_status/message/custom", statusHandler.SetCustomMessage)
			authenticated.DELETE("/user_status/message", statusHandler.ClearMessage)
			authenticated.PUT("/heartbeat", statusHandler.Heartbeat)

			// Other users' statuses
			authenticated.GET("/statuses", statusHandler.ListStatuses)
			authenticated.POST("/statuses/bulk", statusHandler.BulkStatuses)
			authenticated.GET("/statuses/:userId", statusHandler.GetUserStatus)
		}
	}

	return r
}
