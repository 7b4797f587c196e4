package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/start94/-Code-of-Babel/internal/adapter/http/handler"
	"github.com/start94/-Code-of-Babel/internal/adapter/http/middleware"
	"github.com/start94/-Code-of-Babel/internal/domain/service"
	"github.com/start94/-Code-of-Babel/internal/infrastructure/cache"
	"github.com/start94/-Code-of-Babel/internal/infrastructure/config"
	"github.com/start94/-Code-of-Babel/internal/infrastructure/metrics"
	"github.com/start94/-Code-of-Babel/internal/usecase"
)

// Setup creates and configures the Gin router. redisClient may be nil; the
// service then runs without a prediction cache.
func Setup(classifier service.Classifier, redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(classifier, redisClient)
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Optional prediction cache
	var predCache usecase.PredictionCache
	if redisClient != nil {
		predCache = cache.NewPredictionCache(redisClient, cfg.Redis.TTL)
	}

	// Initialize usecases
	languageUC := usecase.NewLanguageUsecase(classifier, predCache, m, logger)

	// Initialize handlers
	languageHandler := handler.NewLanguageHandler(languageUC)

	// The limiter guards inference only; health, readiness and metrics
	// endpoints stay reachable regardless of load.
	var limited []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limited = append(limited, middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	router.POST("/identify-language", append(limited, languageHandler.IdentifyLanguage)...)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(limited...)
	{
		v1.GET("/languages", languageHandler.ListLanguages)
	}

	return router
}
