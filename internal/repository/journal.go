package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/horizonhq/horizon/backend/internal/models"
	"github.com/horizonhq/horizon/backend/pkg/supabase"
)

const journalsTable = "journals"

type journalRepository struct {
	client *supabase.Client
}

// NewJournalRepository creates a new journal repository backed by the
// journals table.
func NewJournalRepository(client *supabase.Client) JournalRepository {
	return &journalRepository{client: client}
}

func (r *journalRepository) Upsert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	body, err := r.client.Upsert(ctx, journalsTable, entry, "user_id,date")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert journal entry: %w", err)
	}
	return unmarshalOne(body)
}

func (r *journalRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*models.JournalEntry, error) {
	body, err := r.client.Select(ctx, journalsTable, map[string]string{
		"user_id": "eq." + userID,
		"date":    "eq." + date,
		"limit":   "1",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return unmarshalOne(body)
}

func (r *journalRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error) {
	query := map[string]string{
		"user_id": "eq." + userID,
		"order":   "date.desc",
	}
	if limit > 0 {
		query["limit"] = strconv.Itoa(limit)
	}

	body, err := r.client.Select(ctx, journalsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return unmarshalMany(body)
}

func (r *journalRepository) GetByUserIDAndDateRange(ctx context.Context, userID, startDate, endDate string) ([]models.JournalEntry, error) {
	// Two bounds on one column need PostgREST's and=() form; a flat map can
	// only hold a single "date" key.
	body, err := r.client.Select(ctx, journalsTable, map[string]string{
		"user_id": "eq." + userID,
		"and":     fmt.Sprintf("(date.gte.%s,date.lte.%s)", startDate, endDate),
		"order":   "date.asc",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries in range: %w", err)
	}
	return unmarshalMany(body)
}

func (r *journalRepository) GetAllByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	body, err := r.client.Select(ctx, journalsTable, map[string]string{
		"user_id": "eq." + userID,
		"order":   "date.asc",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list journal history: %w", err)
	}
	return unmarshalMany(body)
}

func (r *journalRepository) UpdateByUserAndDate(ctx context.Context, userID, date string, fields map[string]interface{}) (*models.JournalEntry, error) {
	body, err := r.client.UpdateWhere(ctx, journalsTable, map[string]string{
		"user_id": "eq." + userID,
		"date":    "eq." + date,
	}, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}
	return unmarshalOne(body)
}

func (r *journalRepository) DeleteByUserAndDate(ctx context.Context, userID, date string) error {
	err := r.client.DeleteWhere(ctx, journalsTable, map[string]string{
		"user_id": "eq." + userID,
		"date":    "eq." + date,
	})
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	return nil
}

func (r *journalRepository) CountInDateRange(ctx context.Context, userID, startDate, endDate string) (int, error) {
	count, err := r.client.Count(ctx, journalsTable, map[string]string{
		"user_id": "eq." + userID,
		"and":     fmt.Sprintf("(date.gte.%s,date.lte.%s)", startDate, endDate),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

func unmarshalOne(body []byte) (*models.JournalEntry, error) {
	entries, err := unmarshalMany(body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return &entries[0], nil
}

func unmarshalMany(body []byte) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal journal entries: %w", err)
	}
	return entries, nil
}
