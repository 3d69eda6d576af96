package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/horizonhq/horizon/backend/internal/analytics"
	"github.com/horizonhq/horizon/backend/internal/cache"
	"github.com/horizonhq/horizon/backend/internal/models"
	"github.com/horizonhq/horizon/backend/internal/repository"
)

// mockJournalRepository is a mock implementation of JournalRepository for testing
type mockJournalRepository struct {
	entries     []models.JournalEntry
	err         error
	rangeCalls  int
	getAllCalls int
}

func (m *mockJournalRepository) Upsert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.entries = append(m.entries, *entry)
	return entry, nil
}

func (m *mockJournalRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.entries {
		if m.entries[i].UserID == userID && m.entries[i].Date == date {
			return &m.entries[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockJournalRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error) {
	return m.entries, m.err
}

func (m *mockJournalRepository) GetByUserIDAndDateRange(ctx context.Context, userID, startDate, endDate string) ([]models.JournalEntry, error) {
	m.rangeCalls++
	if m.err != nil {
		return nil, m.err
	}
	var result []models.JournalEntry
	for _, e := range m.entries {
		if e.Date >= startDate && e.Date <= endDate {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockJournalRepository) GetAllByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	m.getAllCalls++
	return m.entries, m.err
}

func (m *mockJournalRepository) UpdateByUserAndDate(ctx context.Context, userID, date string, fields map[string]interface{}) (*models.JournalEntry, error) {
	return m.GetByUserAndDate(ctx, userID, date)
}

func (m *mockJournalRepository) DeleteByUserAndDate(ctx context.Context, userID, date string) error {
	if m.err != nil {
		return m.err
	}
	kept := m.entries[:0]
	for _, e := range m.entries {
		if !(e.UserID == userID && e.Date == date) {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func (m *mockJournalRepository) CountInDateRange(ctx context.Context, userID, startDate, endDate string) (int, error) {
	entries, err := m.GetByUserIDAndDateRange(ctx, userID, startDate, endDate)
	return len(entries), err
}

// mockCache is an in-memory Cache for testing
type mockCache struct {
	data        map[string]string
	setCalls    int
	deleteCalls int
	deletedKeys []string
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", cache.ErrMiss
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.setCalls++
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	m.deleteCalls++
	for _, k := range keys {
		m.deletedKeys = append(m.deletedKeys, k)
		delete(m.data, k)
	}
	return nil
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func newAnalyticsServiceAt(repo *mockJournalRepository, c cache.Cache, now time.Time) *analyticsService {
	svc := NewAnalyticsService(repo, c).(*analyticsService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetRangePayload_CacheMissComputesAndStores(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	repo := &mockJournalRepository{entries: []models.JournalEntry{
		{UserID: "u1", Date: "2024-03-18", Mood: fptr(6)},
		{UserID: "u1", Date: "2024-03-19", Mood: fptr(8)},
		{UserID: "u1", Date: "2024-03-20"}, // missing mood counts as zero
	}}
	c := newMockCache()
	svc := newAnalyticsServiceAt(repo, c, now)

	payload, cached, err := svc.GetRangePayload(context.Background(), "u1", analytics.TimeRange7d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached {
		t.Error("first call should be a cache miss")
	}
	if payload.Range != 7 || payload.Total != 3 {
		t.Errorf("payload = range %d total %d, want 7/3", payload.Range, payload.Total)
	}
	if payload.AvgMood != 4.67 {
		t.Errorf("AvgMood = %v, want 4.67", payload.AvgMood)
	}
	if c.setCalls != 1 {
		t.Errorf("expected payload stored once, setCalls = %d", c.setCalls)
	}
	if _, ok := c.data["horizon:analytics:u1:7"]; !ok {
		t.Error("expected payload under the user/range key")
	}
}

func TestGetRangePayload_CacheHitSkipsRepository(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	repo := &mockJournalRepository{}
	c := newMockCache()

	stored, _ := json.Marshal(models.AnalyticsPayload{Range: 7, Total: 2, AvgMood: 5.5})
	c.data["horizon:analytics:u1:7"] = string(stored)

	svc := newAnalyticsServiceAt(repo, c, now)
	payload, cached, err := svc.GetRangePayload(context.Background(), "u1", analytics.TimeRange7d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cached {
		t.Error("expected cache hit")
	}
	if payload.AvgMood != 5.5 || payload.Total != 2 {
		t.Errorf("unexpected cached payload %+v", payload)
	}
	if repo.rangeCalls != 0 {
		t.Errorf("repository should not be queried on a hit, got %d calls", repo.rangeCalls)
	}
}

func TestGetRangePayload_CorruptCacheEntryRecomputes(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	repo := &mockJournalRepository{entries: []models.JournalEntry{
		{UserID: "u1", Date: "2024-03-20", Mood: fptr(7)},
	}}
	c := newMockCache()
	c.data["horizon:analytics:u1:7"] = "{not json"

	svc := newAnalyticsServiceAt(repo, c, now)
	payload, cached, err := svc.GetRangePayload(context.Background(), "u1", analytics.TimeRange7d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached {
		t.Error("corrupt entry should not count as a hit")
	}
	if payload.Total != 1 {
		t.Errorf("Total = %d, want 1", payload.Total)
	}
}

func TestGetRangePayload_RepositoryError(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	repo := &mockJournalRepository{err: errors.New("postgrest down")}
	svc := newAnalyticsServiceAt(repo, newMockCache(), now)

	if _, _, err := svc.GetRangePayload(context.Background(), "u1", analytics.TimeRange30d); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetStreaks(t *testing.T) {
	// 2024-03-20 is a Wednesday; the Monday week starts 2024-03-18.
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	repo := &mockJournalRepository{entries: []models.JournalEntry{
		{UserID: "u1", Date: "2024-03-10", Mood: fptr(5)},
		{UserID: "u1", Date: "2024-03-11", Mood: fptr(5)},
		{UserID: "u1", Date: "2024-03-12", Mood: fptr(5)},
		{UserID: "u1", Date: "2024-03-19", Mood: fptr(5)},
		{UserID: "u1", Date: "2024-03-20", Mood: fptr(5)},
	}}
	svc := newAnalyticsServiceAt(repo, newMockCache(), now)

	streaks, err := svc.GetStreaks(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streaks.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", streaks.CurrentStreak)
	}
	if streaks.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", streaks.BestStreak)
	}
	if streaks.WeeklyComplete != 2 {
		t.Errorf("WeeklyComplete = %d, want 2", streaks.WeeklyComplete)
	}
	if streaks.WeeklyTarget != analytics.WeeklyTarget {
		t.Errorf("WeeklyTarget = %d, want %d", streaks.WeeklyTarget, analytics.WeeklyTarget)
	}
}

func TestGetRisk_StaleHistoryScoresLow(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	neg := "Yes"
	repo := &mockJournalRepository{entries: []models.JournalEntry{
		{UserID: "u1", Date: "2024-02-01", Mood: fptr(1), StressLevel: fptr(10), SleepHours: fptr(3), NegativeThoughts: &neg},
	}}
	svc := newAnalyticsServiceAt(repo, newMockCache(), now)

	risk, err := svc.GetRisk(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only the sparse-week signal fires; old misery is outside the window.
	if risk.Score != 1 || risk.Level != "Low" {
		t.Errorf("risk = %+v, want score 1 Low", risk)
	}
}

func TestGetRisk_RecentBadWeekScoresHigh(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	neg := "Yes"
	var entries []models.JournalEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, models.JournalEntry{
			UserID:           "u1",
			Date:             now.AddDate(0, 0, -i).Format(dateLayout),
			Mood:             fptr(2),
			StressLevel:      fptr(9),
			SleepHours:       fptr(4),
			NegativeThoughts: &neg,
		})
	}
	svc := newAnalyticsServiceAt(&mockJournalRepository{entries: entries}, newMockCache(), now)

	risk, err := svc.GetRisk(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if risk.Level != "High" {
		t.Errorf("Level = %q (score %d), want High", risk.Level, risk.Score)
	}
}

func TestGetInsight(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	t.Run("insufficient data", func(t *testing.T) {
		repo := &mockJournalRepository{entries: []models.JournalEntry{
			{UserID: "u1", Date: "2024-03-19", Mood: fptr(8), SleepHours: fptr(8)},
			{UserID: "u1", Date: "2024-03-20", Mood: fptr(3), SleepHours: fptr(4)},
		}}
		svc := newAnalyticsServiceAt(repo, newMockCache(), now)

		insight, err := svc.GetInsight(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if insight.Sufficient || insight.Insight != "" {
			t.Errorf("two entries should not produce an insight, got %+v", insight)
		}
	})

	t.Run("sleep mood insight", func(t *testing.T) {
		repo := &mockJournalRepository{entries: []models.JournalEntry{
			{UserID: "u1", Date: "2024-03-16", Mood: fptr(9), SleepHours: fptr(8)},
			{UserID: "u1", Date: "2024-03-17", Mood: fptr(8), SleepHours: fptr(7.5)},
			{UserID: "u1", Date: "2024-03-18", Mood: fptr(3), SleepHours: fptr(5)},
			{UserID: "u1", Date: "2024-03-19", Mood: fptr(2), SleepHours: fptr(4)},
		}}
		svc := newAnalyticsServiceAt(repo, newMockCache(), now)

		insight, err := svc.GetInsight(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !insight.Sufficient {
			t.Fatal("four contrasting entries should be sufficient")
		}
		if insight.Insight != "Your mood is noticeably better on days with good sleep." {
			t.Errorf("unexpected insight %q", insight.Insight)
		}
	})
}

func TestGetHighlights(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	repo := &mockJournalRepository{entries: []models.JournalEntry{
		{UserID: "u1", Date: "2024-03-17", Mood: fptr(9), SleepHours: fptr(8), Exercise: []string{"Running"}},
		{UserID: "u1", Date: "2024-03-18", Mood: fptr(2), SleepHours: fptr(5)},
		{UserID: "u1", Date: "2024-03-19", Mood: fptr(6), SleepHours: fptr(7), Exercise: []string{"Gym"}},
	}}
	svc := newAnalyticsServiceAt(repo, newMockCache(), now)

	h, err := svc.GetHighlights(context.Background(), "u1", analytics.TimeRange7d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.BestDay == nil || h.BestDay.Date != "2024-03-17" || h.BestDay.Mood != 9 {
		t.Errorf("BestDay = %+v", h.BestDay)
	}
	if h.WorstDay == nil || h.WorstDay.Date != "2024-03-18" {
		t.Errorf("WorstDay = %+v", h.WorstDay)
	}
	if h.ExerciseConsistency != 67 {
		t.Errorf("ExerciseConsistency = %d, want 67", h.ExerciseConsistency)
	}
	if h.ExerciseCategories["Running"] != 1 || h.ExerciseCategories["Gym"] != 1 {
		t.Errorf("ExerciseCategories = %v", h.ExerciseCategories)
	}
}

func TestGetOverview_GatesOnSufficiency(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	repo := &mockJournalRepository{entries: []models.JournalEntry{
		{UserID: "u1", Date: "2024-03-19", Mood: fptr(6)},
	}}
	svc := newAnalyticsServiceAt(repo, newMockCache(), now)

	ov, err := svc.GetOverview(context.Background(), "u1", analytics.TimeRange7d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ov.Summary.DataQuality.Sufficient {
		t.Error("one entry should not be sufficient")
	}
	if ov.Explanation == "" {
		t.Error("explanation should carry the keep-journaling prompt")
	}
}
