package models

import "time"

// User represents a user in the system
type User struct {
	ID                string     `json:"id"`
	Email             *string    `json:"email,omitempty"`
	Name              *string    `json:"name,omitempty"`
	BaselineHappiness *float64   `json:"baseline_happiness,omitempty"`
	TypicalSleepHours *float64   `json:"typical_sleep_hours,omitempty"`
	CommonProblems    *string    `json:"common_problems,omitempty"`
	KnownConditions   *string    `json:"known_conditions,omitempty"`
	Location          *string    `json:"location,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// UpdateProfileRequest carries the onboarding profile fields. All fields are
// optional; absent ones are left untouched.
type UpdateProfileRequest struct {
	Name              *string  `json:"name"`
	BaselineHappiness *float64 `json:"baseline_happiness"`
	TypicalSleepHours *float64 `json:"typical_sleep_hours"`
	CommonProblems    *string  `json:"common_problems"`
	KnownConditions   *string  `json:"known_conditions"`
	Location          *string  `json:"location"`
}

// AnalyticsPayload is the cacheable response body for GET /analytics.
// It mirrors what the dashboard's range widgets consume: the raw entries for
// the requested calendar window plus a couple of headline numbers. Keys are
// camelCase to match the payload the dashboard already parses.
type AnalyticsPayload struct {
	Range   int            `json:"range"`
	Total   int            `json:"total"`
	AvgMood float64        `json:"avgMood"`
	Entries []JournalEntry `json:"entries"`
}

// InsightResponse carries the insight-of-the-week sentence.
// Insight is empty and Sufficient false when fewer than the minimum number of
// entries were logged in the last seven days.
type InsightResponse struct {
	Insight    string `json:"insight,omitempty"`
	Sufficient bool   `json:"sufficient"`
}

// StreakSummary reports journaling consistency counters.
type StreakSummary struct {
	CurrentStreak  int `json:"current_streak"`
	BestStreak     int `json:"best_streak"`
	WeeklyComplete int `json:"weekly_complete"`
	WeeklyTarget   int `json:"weekly_target"`
}

// RiskResponse reports the risk classification with its raw score.
type RiskResponse struct {
	Level string `json:"level"`
	Score int    `json:"score"`
}

// OverviewRequest selects the time range for the full mental summary.
// The key is camelCase because the dashboard already sends it that way.
type OverviewRequest struct {
	TimeRange string `json:"timeRange" binding:"required"`
}

// DayHighlight pairs a date with its mood score.
type DayHighlight struct {
	Date string  `json:"date"`
	Mood float64 `json:"mood"`
}

// HighlightsResponse carries the dashboard's highlight cards: extremes,
// habit consistency and the exercise category breakdown for a range.
type HighlightsResponse struct {
	BestDay             *DayHighlight  `json:"best_day,omitempty"`
	WorstDay            *DayHighlight  `json:"worst_day,omitempty"`
	SleepConsistency    int            `json:"sleep_consistency"`
	ExerciseConsistency int            `json:"exercise_consistency"`
	ExerciseCategories  map[string]int `json:"exercise_categories"`
	MoodVolatility      float64        `json:"mood_volatility"`
}
