package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"saksham-engine/internal/api/handlers"
	"saksham-engine/internal/api/middleware"
	"saksham-engine/internal/catalog"
	"saksham-engine/internal/config"
	"saksham-engine/internal/ranker/workers"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, poolManager *workers.PoolManager, store *catalog.Store) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(poolManager, store))
		health.GET("/live", handlers.LivenessHandler)
		health.GET("/workers", handlers.WorkerHealthHandler(poolManager))
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(poolManager, store))

	// Prometheus metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/match", handlers.MatchHandler(cfg, poolManager, store))
		v1.POST("/compare", handlers.CompareHandler(cfg))

		// Filter engine routes
		filters := v1.Group("/filters")
		{
			filters.POST("/apply", handlers.ApplyFiltersHandler())
			filters.POST("/smart", handlers.SmartFiltersHandler())
			filters.POST("/suggestions", handlers.SuggestionsHandler())
			filters.GET("/presets", handlers.PresetListHandler())
			filters.GET("/presets/:name", handlers.PresetHandler())
		}

		// Catalog routes
		catalogGroup := v1.Group("/catalog")
		{
			catalogGroup.PUT("", handlers.CatalogUpsertHandler(store))
			catalogGroup.GET("", handlers.CatalogListHandler(store))
			catalogGroup.GET("/:id", handlers.CatalogGetHandler(store))
			catalogGroup.DELETE("/:id", handlers.CatalogRemoveHandler(store))
		}

		// Worker monitoring routes
		workersGroup := v1.Group("/workers")
		{
			workersGroup.GET("/stats", handlers.WorkerStatsHandler(poolManager))
			workersGroup.GET("/status", handlers.DetailedWorkerStatusHandler(poolManager))
		}

		// Client rate limit stats
		clients := v1.Group("/clients")
		{
			clients.GET("/:client/stats", handlers.ClientStatsHandler(poolManager))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Saksham Match Engine",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
