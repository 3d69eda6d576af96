package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/horizonhq/horizon/backend/internal/analytics"
	"github.com/horizonhq/horizon/backend/internal/cache"
	"github.com/horizonhq/horizon/backend/internal/logger"
	"github.com/horizonhq/horizon/backend/internal/models"
	"github.com/horizonhq/horizon/backend/internal/repository"
)

type analyticsService struct {
	journalRepo repository.JournalRepository
	cache       cache.Cache
	now         func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(journalRepo repository.JournalRepository, c cache.Cache) AnalyticsService {
	return &analyticsService{
		journalRepo: journalRepo,
		cache:       c,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GetRangePayload serves the dashboard's range widgets cache-aside: a Redis
// hit returns the stored payload untouched; a miss loads the calendar window
// from the journals table, computes the headline numbers and stores the
// result for cache.AnalyticsTTL.
func (s *analyticsService) GetRangePayload(ctx context.Context, userID string, tr analytics.TimeRange) (*models.AnalyticsPayload, bool, error) {
	key := cache.AnalyticsKey(userID, tr.Days())

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var payload models.AnalyticsPayload
		if err := json.Unmarshal([]byte(raw), &payload); err == nil {
			return &payload, true, nil
		}
		// A corrupt cache entry falls through to a recompute.
		logger.Ctx(ctx).Warn("discarding unreadable analytics cache entry", logger.String("key", key))
	}

	now := s.now()
	fromDate := now.AddDate(0, 0, -(tr.Days() - 1)).Format(dateLayout)
	toDate := now.Format(dateLayout)

	entries, err := s.journalRepo.GetByUserIDAndDateRange(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load analytics window: %w", err)
	}

	payload := &models.AnalyticsPayload{
		Range:   tr.Days(),
		Total:   len(entries),
		AvgMood: averageMood(entries),
		Entries: entries,
	}

	if data, err := json.Marshal(payload); err == nil {
		if err := s.cache.Set(ctx, key, string(data), cache.AnalyticsTTL); err != nil {
			logger.Ctx(ctx).Warn("failed to cache analytics payload", logger.Err(err))
		}
	}

	return payload, false, nil
}

func (s *analyticsService) GetOverview(ctx context.Context, userID string, tr analytics.TimeRange) (*analytics.Overview, error) {
	raw, err := s.journalRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal history: %w", err)
	}

	overview := analytics.BuildOverview(raw, tr, s.now())
	return &overview, nil
}

func (s *analyticsService) GetInsight(ctx context.Context, userID string) (*models.InsightResponse, error) {
	entries, err := s.loadRecentWeek(ctx, userID)
	if err != nil {
		return nil, err
	}

	corr := analytics.ComputeCorrelations(entries)
	return &models.InsightResponse{
		Insight:    corr.Insight,
		Sufficient: corr.Insight != "",
	}, nil
}

func (s *analyticsService) GetStreaks(ctx context.Context, userID string) (*models.StreakSummary, error) {
	raw, err := s.journalRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal history: %w", err)
	}

	all := analytics.Normalize(raw)
	current, best := analytics.Streaks(all)

	return &models.StreakSummary{
		CurrentStreak:  current,
		BestStreak:     best,
		WeeklyComplete: analytics.WeeklyCompletionCount(all, s.now()),
		WeeklyTarget:   analytics.WeeklyTarget,
	}, nil
}

func (s *analyticsService) GetRisk(ctx context.Context, userID string) (*models.RiskResponse, error) {
	raw, err := s.journalRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal history: %w", err)
	}

	now := s.now()
	recent := analytics.SinceCalendarDays(analytics.Normalize(raw), 7, now)

	// The weekly tally is a cheap HEAD count rather than another full load.
	weekStart, weekEnd := analytics.WeekBounds(now)
	weekly, err := s.journalRepo.CountInDateRange(ctx, userID, weekStart.Format(dateLayout), weekEnd.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to count entries this week: %w", err)
	}

	risk := analytics.ScoreRisk(recent, weekly)
	return &models.RiskResponse{
		Level: string(risk.Level),
		Score: risk.Score,
	}, nil
}

func (s *analyticsService) GetHighlights(ctx context.Context, userID string, tr analytics.TimeRange) (*models.HighlightsResponse, error) {
	raw, err := s.journalRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal history: %w", err)
	}

	window := analytics.TrailingByCount(analytics.Normalize(raw), tr.Days())
	agg := analytics.Aggregate(window)

	resp := &models.HighlightsResponse{
		SleepConsistency:    agg.SleepConsistencyPct,
		ExerciseConsistency: agg.ExerciseConsistencyPct,
		ExerciseCategories:  agg.ExerciseCategories,
		MoodVolatility:      agg.MoodVolatility,
	}
	if agg.BestDay != nil {
		resp.BestDay = &models.DayHighlight{
			Date: agg.BestDay.Date.Format(dateLayout),
			Mood: agg.BestDay.Mood,
		}
	}
	if agg.WorstDay != nil {
		resp.WorstDay = &models.DayHighlight{
			Date: agg.WorstDay.Date.Format(dateLayout),
			Mood: agg.WorstDay.Mood,
		}
	}
	return resp, nil
}

func (s *analyticsService) loadRecentWeek(ctx context.Context, userID string) ([]analytics.Entry, error) {
	now := s.now()
	fromDate := now.AddDate(0, 0, -6).Format(dateLayout)
	toDate := now.Format(dateLayout)

	raw, err := s.journalRepo.GetByUserIDAndDateRange(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent entries: %w", err)
	}
	return analytics.Normalize(raw), nil
}

// averageMood is the headline number of the range payload: mean mood with
// missing scores counted as zero, rounded to two decimals.
func averageMood(entries []models.JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		if e.Mood != nil {
			sum += *e.Mood
		}
	}
	avg := sum / float64(len(entries))
	return math.Round(avg*100) / 100
}
