package models

import "time"

// JournalEntry represents one user's journal record for a single calendar
// date. The journals table enforces uniqueness on (user_id, date); writes go
// through an upsert on that key.
//
// Dates travel as plain "YYYY-MM-DD" strings, matching the Postgres date
// column. All numeric and enum fields are optional on the wire; analytics
// defaulting happens downstream, not here.
type JournalEntry struct {
	UserID                 string     `json:"user_id,omitempty"`
	Date                   string     `json:"date"`
	Mood                   *float64   `json:"mood,omitempty"`
	SleepQuality           *string    `json:"sleep_quality,omitempty"`
	SleepHours             *float64   `json:"sleep_hours,omitempty"`
	Exercise               []string   `json:"exercise,omitempty"`
	DealBreaker            *string    `json:"deal_breaker,omitempty"`
	Productivity           *float64   `json:"productivity,omitempty"`
	ProductivityComparison *string    `json:"productivity_comparison,omitempty"`
	Overthinking           *float64   `json:"overthinking,omitempty"`
	SpecialDay             *string    `json:"special_day,omitempty"`
	StressLevel            *float64   `json:"stress_level,omitempty"`
	DietStatus             *string    `json:"diet_status,omitempty"`
	StressTriggers         *string    `json:"stress_triggers,omitempty"`
	MainChallenges         *string    `json:"main_challenges,omitempty"`
	DailySummary           *string    `json:"daily_summary,omitempty"`
	SocialTime             *string    `json:"social_time,omitempty"`
	NegativeThoughts       *string    `json:"negative_thoughts,omitempty"`
	NegativeThoughtsDetail *string    `json:"negative_thoughts_detail,omitempty"`
	ScreenWork             *float64   `json:"screen_work,omitempty"`
	ScreenEntertainment    *float64   `json:"screen_entertainment,omitempty"`
	CaffeineIntake         *string    `json:"caffeine_intake,omitempty"`
	TimeOutdoors           *string    `json:"time_outdoors,omitempty"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`
}

// CreateJournalRequest is the payload for POST /journals. Date defaults to
// today when omitted. Mood is the only required signal; everything else is
// whatever the user chose to fill in on the wizard.
type CreateJournalRequest struct {
	Date                   string   `json:"date"`
	Mood                   *float64 `json:"mood" binding:"required"`
	SleepQuality           *string  `json:"sleep_quality"`
	SleepHours             *float64 `json:"sleep_hours"`
	Exercise               []string `json:"exercise"`
	DealBreaker            *string  `json:"deal_breaker"`
	Productivity           *float64 `json:"productivity"`
	ProductivityComparison *string  `json:"productivity_comparison"`
	Overthinking           *float64 `json:"overthinking"`
	SpecialDay             *string  `json:"special_day"`
	StressLevel            *float64 `json:"stress_level"`
	DietStatus             *string  `json:"diet_status"`
	StressTriggers         *string  `json:"stress_triggers"`
	MainChallenges         *string  `json:"main_challenges"`
	DailySummary           *string  `json:"daily_summary"`
	SocialTime             *string  `json:"social_time"`
	NegativeThoughts       *string  `json:"negative_thoughts"`
	NegativeThoughtsDetail *string  `json:"negative_thoughts_detail"`
	ScreenWork             *float64 `json:"screen_work"`
	ScreenEntertainment    *float64 `json:"screen_entertainment"`
	CaffeineIntake         *string  `json:"caffeine_intake"`
	TimeOutdoors           *string  `json:"time_outdoors"`
}

// UpdateJournalRequest is the payload for PATCH /journals/:date.
// Nullable types distinguish "field absent" (leave as-is) from "field: null"
// (clear the value), which plain pointers cannot express. The fields must be
// value types: for a pointer field, encoding/json maps an explicit null to a
// nil pointer without ever calling UnmarshalJSON, which would collapse null
// back into absent.
type UpdateJournalRequest struct {
	Mood                NullableFloat  `json:"mood"`
	SleepQuality        NullableString `json:"sleep_quality"`
	SleepHours          NullableFloat  `json:"sleep_hours"`
	Exercise            []string       `json:"exercise"`
	StressLevel         NullableFloat  `json:"stress_level"`
	StressTriggers      NullableString `json:"stress_triggers"`
	MainChallenges      NullableString `json:"main_challenges"`
	DailySummary        NullableString `json:"daily_summary"`
	NegativeThoughts    NullableString `json:"negative_thoughts"`
	ScreenWork          NullableFloat  `json:"screen_work"`
	ScreenEntertainment NullableFloat  `json:"screen_entertainment"`
}
