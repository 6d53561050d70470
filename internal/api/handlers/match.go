package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"saksham-engine/internal/catalog"
	"saksham-engine/internal/config"
	"saksham-engine/internal/logging"
	"saksham-engine/internal/metrics"
	"saksham-engine/internal/ranker/workers"
	"saksham-engine/pkg/models"
	"saksham-engine/pkg/utils"
)

var validate = validator.New()

// MatchHandler handles personalized ranking requests using the worker pool
func MatchHandler(cfg *config.Config, poolManager *workers.PoolManager, store *catalog.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Match request received")
		metrics.ScoringRequests.WithLabelValues("match").Inc()

		var req models.MatchRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		ctx := c.Request().Context()

		internships := req.Internships
		if req.UseCatalog {
			var err error
			internships, err = store.List(ctx)
			if err != nil {
				logger.Error("Failed to load catalog", map[string]interface{}{"error": err.Error()})
				return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Error:     "catalog_unavailable",
					Message:   "Failed to load internships from catalog",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
		}

		result, err := poolManager.SubmitJob(ctx, &req, internships)
		if err != nil {
			logger.Error("Failed to submit job to worker pool", map[string]interface{}{"error": err.Error()})
			status := http.StatusInternalServerError
			errCode := "job_submission_failed"
			if customErr, ok := err.(*utils.CustomError); ok && customErr.Code == http.StatusTooManyRequests {
				status = http.StatusTooManyRequests
				errCode = "rate_limited"
			}
			return c.JSON(status, models.ErrorResponse{
				Error:     errCode,
				Message:   fmt.Sprintf("Failed to submit ranking job: %v", err),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if result.Error != nil {
			logger.Error("Ranking job failed", map[string]interface{}{"error": result.Error.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "ranking_failed",
				Message:   fmt.Sprintf("Failed to rank internships: %v", result.Error),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		response := result.Response
		response.RequestID = requestID
		response.ProcessingTime = time.Since(startTime)

		logger.Info("Match request completed successfully", map[string]interface{}{
			"processing_time": time.Since(startTime).String(),
			"recommendations": len(response.Recommendations),
			"suggestions":     len(response.Suggestions),
		})

		return c.JSON(http.StatusOK, response)
	}
}
