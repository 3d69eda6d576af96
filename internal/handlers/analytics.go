package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/horizonhq/horizon/backend/internal/analytics"
	"github.com/horizonhq/horizon/backend/internal/apierror"
	"github.com/horizonhq/horizon/backend/internal/logger"
	"github.com/horizonhq/horizon/backend/internal/models"
	"github.com/horizonhq/horizon/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetRange handles GET /api/v1/analytics?range=7d
func (h *AnalyticsHandler) GetRange(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	rangeParam := c.DefaultQuery("range", "7")
	tr, err := analytics.ParseTimeRange(rangeParam)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(apierror.GetRequestID(c), rangeParam))
		return
	}

	payload, cached, err := h.analyticsService.GetRangePayload(c.Request.Context(), userID.(string), tr)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build analytics payload", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cached":  cached,
		"range":   payload.Range,
		"total":   payload.Total,
		"avgMood": payload.AvgMood,
		"entries": payload.Entries,
	})
}

// GetOverview handles POST /api/v1/ai/overview
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	// The dashboard omits the body for the default range.
	req := models.OverviewRequest{TimeRange: "7d"}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
			return
		}
	}

	tr, err := analytics.ParseTimeRange(req.TimeRange)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(apierror.GetRequestID(c), req.TimeRange))
		return
	}

	overview, err := h.analyticsService.GetOverview(c.Request.Context(), userID.(string), tr)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build overview", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetInsight handles GET /api/v1/analytics/insight
func (h *AnalyticsHandler) GetInsight(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	insight, err := h.analyticsService.GetInsight(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute insight", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, insight)
}

// GetStreaks handles GET /api/v1/analytics/streaks
func (h *AnalyticsHandler) GetStreaks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	streaks, err := h.analyticsService.GetStreaks(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute streaks", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, streaks)
}

// GetRisk handles GET /api/v1/analytics/risk
func (h *AnalyticsHandler) GetRisk(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	risk, err := h.analyticsService.GetRisk(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to assess risk", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, risk)
}

// GetHighlights handles GET /api/v1/analytics/highlights?range=30d
func (h *AnalyticsHandler) GetHighlights(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	rangeParam := c.DefaultQuery("range", "30")
	tr, err := analytics.ParseTimeRange(rangeParam)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(apierror.GetRequestID(c), rangeParam))
		return
	}

	highlights, err := h.analyticsService.GetHighlights(c.Request.Context(), userID.(string), tr)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute highlights", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, highlights)
}
