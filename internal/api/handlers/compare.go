package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"saksham-engine/internal/config"
	"saksham-engine/internal/logging"
	"saksham-engine/internal/matching"
	"saksham-engine/internal/metrics"
	"saksham-engine/pkg/models"
	"saksham-engine/pkg/utils"
)

// CompareHandler scores a small set of listings against one profile for
// the side-by-side comparison view
func CompareHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		metrics.ScoringRequests.WithLabelValues("compare").Inc()

		var req models.CompareRequest
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

		// Comparison is meaningless without personalization data
		if req.Profile == nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "missing_profile",
				Message:   "Comparison requires a candidate profile",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		maxItems := cfg.Matching.MaxCompareItems
		if len(req.Internships) > maxItems {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "too_many_items",
				Message:   fmt.Sprintf("Comparison supports at most %d internships", maxItems),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		entries := make([]models.ComparisonEntry, len(req.Internships))
		for i, in := range req.Internships {
			breakdown := matching.ComparisonBreakdown(req.Profile, in)
			entries[i] = models.ComparisonEntry{
				InternshipID:  in.ID,
				Score:         breakdown.Total,
				SkillsScore:   breakdown.Skills,
				StipendScore:  breakdown.Stipend,
				LocationScore: breakdown.Location,
				SectorScore:   breakdown.Sector,
				MatchedSkills: breakdown.MatchedSkills,
			}
		}

		logger.Info("Comparison computed", map[string]interface{}{
			"items": len(entries),
		})

		return c.JSON(http.StatusOK, models.CompareResponse{
			Success:   true,
			Entries:   entries,
			RequestID: requestID,
		})
	}
}
