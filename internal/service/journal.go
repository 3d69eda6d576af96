package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/horizonhq/horizon/backend/internal/cache"
	"github.com/horizonhq/horizon/backend/internal/logger"
	"github.com/horizonhq/horizon/backend/internal/models"
	"github.com/horizonhq/horizon/backend/internal/repository"
)

const dateLayout = "2006-01-02"

type journalService struct {
	journalRepo repository.JournalRepository
	cache       cache.Cache
}

// NewJournalService creates a new journal service. Writes invalidate the
// user's cached analytics payloads.
func NewJournalService(journalRepo repository.JournalRepository, c cache.Cache) JournalService {
	return &journalService{
		journalRepo: journalRepo,
		cache:       c,
	}
}

func (s *journalService) CreateEntry(ctx context.Context, userID string, req *models.CreateJournalRequest) (*models.JournalEntry, error) {
	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := time.Now().UTC()
	entry := &models.JournalEntry{
		UserID:                 userID,
		Date:                   date,
		Mood:                   req.Mood,
		SleepQuality:           req.SleepQuality,
		SleepHours:             req.SleepHours,
		Exercise:               cleanExerciseTags(req.Exercise),
		DealBreaker:            req.DealBreaker,
		Productivity:           req.Productivity,
		ProductivityComparison: req.ProductivityComparison,
		Overthinking:           req.Overthinking,
		SpecialDay:             req.SpecialDay,
		StressLevel:            req.StressLevel,
		DietStatus:             req.DietStatus,
		StressTriggers:         req.StressTriggers,
		MainChallenges:         req.MainChallenges,
		DailySummary:           req.DailySummary,
		SocialTime:             req.SocialTime,
		NegativeThoughts:       req.NegativeThoughts,
		NegativeThoughtsDetail: req.NegativeThoughtsDetail,
		ScreenWork:             req.ScreenWork,
		ScreenEntertainment:    req.ScreenEntertainment,
		CaffeineIntake:         req.CaffeineIntake,
		TimeOutdoors:           req.TimeOutdoors,
		UpdatedAt:              &now,
	}

	saved, err := s.journalRepo.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.invalidateAnalytics(ctx, userID)
	return saved, nil
}

func (s *journalService) GetEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error) {
	entries, err := s.journalRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}
	return entries, nil
}

func (s *journalService) GetEntryByDate(ctx context.Context, userID, date string) (*models.JournalEntry, error) {
	return s.journalRepo.GetByUserAndDate(ctx, userID, date)
}

func (s *journalService) UpdateEntry(ctx context.Context, userID, date string, req *models.UpdateJournalRequest) (*models.JournalEntry, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	setFloat := func(column string, v models.NullableFloat) {
		if v.Set {
			fields[column] = v.ToPtr()
		}
	}
	setString := func(column string, v models.NullableString) {
		if v.Set {
			fields[column] = v.ToPtr()
		}
	}

	setFloat("mood", req.Mood)
	setString("sleep_quality", req.SleepQuality)
	setFloat("sleep_hours", req.SleepHours)
	setFloat("stress_level", req.StressLevel)
	setString("stress_triggers", req.StressTriggers)
	setString("main_challenges", req.MainChallenges)
	setString("daily_summary", req.DailySummary)
	setString("negative_thoughts", req.NegativeThoughts)
	setFloat("screen_work", req.ScreenWork)
	setFloat("screen_entertainment", req.ScreenEntertainment)
	if req.Exercise != nil {
		fields["exercise"] = cleanExerciseTags(req.Exercise)
	}

	updated, err := s.journalRepo.UpdateByUserAndDate(ctx, userID, date, fields)
	if err != nil {
		return nil, err
	}

	s.invalidateAnalytics(ctx, userID)
	return updated, nil
}

// DeleteEntry removes the entry for the given day. PostgREST deletes match
// silently, so existence is checked first to surface a proper not-found.
func (s *journalService) DeleteEntry(ctx context.Context, userID, date string) error {
	if _, err := s.journalRepo.GetByUserAndDate(ctx, userID, date); err != nil {
		return err
	}
	if err := s.journalRepo.DeleteByUserAndDate(ctx, userID, date); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	s.invalidateAnalytics(ctx, userID)
	return nil
}

// invalidateAnalytics drops the user's cached analytics payloads after a
// write. Failures are logged, not surfaced; the TTL bounds the staleness.
func (s *journalService) invalidateAnalytics(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, cache.AnalyticsKeysForUser(userID)...); err != nil {
		logger.Ctx(ctx).Warn("failed to invalidate analytics cache", logger.Err(err))
	}
}

// cleanExerciseTags drops the "Other" toggle marker and empty "Other:"
// placeholders the entry wizard leaves behind, keeping filled-in details.
func cleanExerciseTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "Other" || strings.TrimSpace(tag) == "Other:" {
			continue
		}
		cleaned = append(cleaned, tag)
	}
	return cleaned
}
