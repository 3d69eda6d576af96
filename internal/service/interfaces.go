package service

import (
	"context"

	"github.com/horizonhq/horizon/backend/internal/analytics"
	"github.com/horizonhq/horizon/backend/internal/models"
)

// JournalService defines the interface for journal business logic
type JournalService interface {
	CreateEntry(ctx context.Context, userID string, req *models.CreateJournalRequest) (*models.JournalEntry, error)
	GetEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error)
	GetEntryByDate(ctx context.Context, userID, date string) (*models.JournalEntry, error)
	UpdateEntry(ctx context.Context, userID, date string, req *models.UpdateJournalRequest) (*models.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID, date string) error
}

// AnalyticsService defines the interface for analytics business logic
type AnalyticsService interface {
	// GetRangePayload returns the cacheable range payload and whether it was
	// served from cache.
	GetRangePayload(ctx context.Context, userID string, tr analytics.TimeRange) (*models.AnalyticsPayload, bool, error)
	GetOverview(ctx context.Context, userID string, tr analytics.TimeRange) (*analytics.Overview, error)
	GetInsight(ctx context.Context, userID string) (*models.InsightResponse, error)
	GetStreaks(ctx context.Context, userID string) (*models.StreakSummary, error)
	GetRisk(ctx context.Context, userID string) (*models.RiskResponse, error)
	GetHighlights(ctx context.Context, userID string, tr analytics.TimeRange) (*models.HighlightsResponse, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, accessToken string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
}
