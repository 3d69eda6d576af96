package repository

import (
	"context"
	"errors"

	"github.com/horizonhq/horizon/backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no rows. Services map it to a
// 404 instead of a 500.
var ErrNotFound = errors.New("not found")

// JournalRepository defines the interface for journal entry data access.
// Entries are keyed by (user_id, date); there is at most one per user per day.
type JournalRepository interface {
	Upsert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	GetByUserAndDate(ctx context.Context, userID, date string) (*models.JournalEntry, error)
	GetByUserID(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error)
	GetByUserIDAndDateRange(ctx context.Context, userID, startDate, endDate string) ([]models.JournalEntry, error)
	GetAllByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error)
	UpdateByUserAndDate(ctx context.Context, userID, date string, fields map[string]interface{}) (*models.JournalEntry, error)
	DeleteByUserAndDate(ctx context.Context, userID, date string) error
	CountInDateRange(ctx context.Context, userID, startDate, endDate string) (int, error)
}

// UserRepository defines the interface for user profile data access.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
}
