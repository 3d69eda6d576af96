package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/horizonhq/horizon/backend/internal/apierror"
	"github.com/horizonhq/horizon/backend/internal/logger"
	"github.com/horizonhq/horizon/backend/internal/models"
	"github.com/horizonhq/horizon/backend/internal/repository"
	"github.com/horizonhq/horizon/backend/internal/service"
)

type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// CreateEntry handles POST /api/v1/journals. Posting twice for the same date
// overwrites the earlier entry; the day is the natural key.
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "mood", Message: "is required", Code: "required"},
		}))
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), userID.(string), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to create journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListEntries handles GET /api/v1/journals?limit=N
func (h *JournalHandler) ListEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "limit must be a non-negative integer", "Invalid limit parameter"))
			return
		}
		limit = parsed
	}

	entries, err := h.journalService.GetEntries(c.Request.Context(), userID.(string), limit)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list journal entries", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
}

// GetEntry handles GET /api/v1/journals/:date
func (h *JournalHandler) GetEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	date, ok := h.bindDateParam(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByDate(c.Request.Context(), userID.(string), date)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Journal entry", date))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to get journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles PATCH /api/v1/journals/:date. Fields sent as null are
// cleared; fields left out are untouched.
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	date, ok := h.bindDateParam(c)
	if !ok {
		return
	}

	var req models.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), userID.(string), date, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Journal entry", date))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to update journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/journals/:date
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	date, ok := h.bindDateParam(c)
	if !ok {
		return
	}

	if err := h.journalService.DeleteEntry(c.Request.Context(), userID.(string), date); err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Journal entry", date))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to delete journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.Status(http.StatusNoContent)
}

// bindDateParam validates the :date path segment as YYYY-MM-DD.
func (h *JournalHandler) bindDateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "date", Message: "must be formatted YYYY-MM-DD", Code: "invalid_date"},
		}))
		return "", false
	}
	return date, true
}
