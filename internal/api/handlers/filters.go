package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"saksham-engine/internal/logging"
	"saksham-engine/internal/matching"
	"saksham-engine/internal/metrics"
	"saksham-engine/pkg/models"
	"saksham-engine/pkg/utils"
)

// ApplyFiltersHandler runs the predicate engine over an inline listing set
func ApplyFiltersHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		metrics.ScoringRequests.WithLabelValues("filters_apply").Inc()

		var req models.ApplyFiltersRequest
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

		filtered := matching.ApplyFilters(req.Internships, req.Filters)

		logger.Info("Filters applied", map[string]interface{}{
			"input_count":  len(req.Internships),
			"output_count": len(filtered),
		})

		return c.JSON(http.StatusOK, models.FilteredResponse{
			Success:     true,
			Internships: filtered,
			Count:       len(filtered),
			RequestID:   requestID,
		})
	}
}

// SmartFiltersHandler derives filter state from a candidate profile
func SmartFiltersHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		metrics.ScoringRequests.WithLabelValues("filters_smart").Inc()

		var req models.SmartFiltersRequest
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

		filters := matching.GenerateSmartFilters(req.Profile, req.Options)

		logger.Info("Smart filters generated", map[string]interface{}{
			"selected_skills":  len(filters.SelectedSkills),
			"selected_sectors": len(filters.SelectedSectors),
		})

		return c.JSON(http.StatusOK, models.SmartFiltersResponse{
			Success:    true,
			Filters:    filters,
			MatchScore: matching.FilterMatchScore(&req.Profile, filters),
			RequestID:  requestID,
		})
	}
}

// PresetHandler returns a named filter preset overlay
func PresetHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		name := c.Param("name")
		overlay, ok := matching.Preset(name)
		if !ok {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "preset_not_found",
				Message:   "Unknown filter preset: " + name,
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"name":       name,
			"filters":    matching.ApplyPreset(models.NewFilterState(), overlay),
			"request_id": requestID,
		})
	}
}

// PresetListHandler lists the available filter preset names
func PresetListHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"presets":    matching.PresetNames(),
			"request_id": requestID,
		})
	}
}

// SuggestionsHandler proposes filter refinements for the current result size
func SuggestionsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.SuggestionsRequest
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

		suggestions := matching.Suggestions(req.Profile, req.Filters, req.ResultCount)

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":     true,
			"suggestions": suggestions,
			"request_id":  requestID,
		})
	}
}
