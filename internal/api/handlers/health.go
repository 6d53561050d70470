package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"saksham-engine/internal/catalog"
	"saksham-engine/internal/logging"
	"saksham-engine/internal/ranker/workers"
	"saksham-engine/pkg/models"
	"saksham-engine/pkg/utils"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0", // TODO: Get from build info
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. The service is ready
// when the worker pool is running and the catalog store answers a ping.
func ReadinessHandler(poolManager *workers.PoolManager, store *catalog.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{"api": "ok"}
		ready := true

		if poolManager.IsHealthy() {
			checks["workers"] = "ok"
		} else {
			checks["workers"] = "unavailable"
			ready = false
		}

		ctx := c.Request().Context()
		if err := store.IsHealthy(ctx); err != nil {
			checks["catalog"] = "unavailable"
			// The catalog is optional for inline requests, so redis being
			// down degrades the service rather than failing readiness.
		} else {
			checks["catalog"] = "ok"
		}

		status := "ready"
		httpStatus := http.StatusOK
		if !ready {
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(httpStatus, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(poolManager *workers.PoolManager, store *catalog.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Status check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{"api": "operational"}

		if poolManager.IsHealthy() {
			checks["workers"] = "operational"
		} else {
			checks["workers"] = "degraded"
		}

		if err := store.IsHealthy(c.Request().Context()); err != nil {
			checks["catalog"] = "degraded"
		} else {
			checks["catalog"] = "operational"
		}

		response := models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}
