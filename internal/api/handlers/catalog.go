package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"saksham-engine/internal/catalog"
	"saksham-engine/internal/logging"
	"saksham-engine/internal/metrics"
	"saksham-engine/pkg/models"
	"saksham-engine/pkg/utils"
)

// CatalogUpsertHandler bulk inserts or replaces listings in the catalog
func CatalogUpsertHandler(store *catalog.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.CatalogUpsertRequest
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
		if err := store.Upsert(ctx, req.Internships); err != nil {
			logger.Error("Catalog upsert failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "catalog_upsert_failed",
				Message:   "Failed to store internships",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if count, err := store.Count(ctx); err == nil {
			metrics.CatalogSize.Set(float64(count))
		}

		logger.Info("Catalog upsert completed", map[string]interface{}{
			"count": len(req.Internships),
		})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"count":      len(req.Internships),
			"request_id": requestID,
		})
	}
}

// CatalogListHandler returns every listing in the catalog
func CatalogListHandler(store *catalog.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		internships, err := store.List(c.Request().Context())
		if err != nil {
			logger.Error("Catalog list failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "catalog_unavailable",
				Message:   "Failed to load internships from catalog",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":     true,
			"internships": internships,
			"count":       len(internships),
			"request_id":  requestID,
		})
	}
}

// CatalogGetHandler returns a single listing by ID
func CatalogGetHandler(store *catalog.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		id := c.Param("id")
		internship, err := store.Get(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "internship_not_found",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"internship": internship,
			"request_id": requestID,
		})
	}
}

// CatalogRemoveHandler deletes a listing from the catalog
func CatalogRemoveHandler(store *catalog.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		id := c.Param("id")
		ctx := c.Request().Context()
		if err := store.Remove(ctx, id); err != nil {
			logger.Error("Catalog remove failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "catalog_remove_failed",
				Message:   "Failed to remove internship",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if count, err := store.Count(ctx); err == nil {
			metrics.CatalogSize.Set(float64(count))
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"id":         id,
			"request_id": requestID,
		})
	}
}
