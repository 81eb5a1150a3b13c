package http

import (
	"github.com/gin-gonic/gin"
	"github.com/solarisreal/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		subsidy := v1.Group("/subsidy")
		{
			subsidy.POST("/estimate", handler.EstimateSubsidy)
			subsidy.POST("/match", handler.MatchSchemes)
		}

		schemes := v1.Group("/schemes")
		{
			schemes.GET("", handler.ListSchemes)
			schemes.GET("/options", handler.SchemeFilterOptions)
			schemes.POST("/filter", handler.FilterSchemes)
		}

		v1.GET("/vendors", handler.ListVendors)
	}

	return router
}
