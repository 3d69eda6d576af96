package analytics

import (
	"time"

	"github.com/horizonhq/horizon/backend/internal/models"
)

// minDaysForSufficiency is the entry count below which the dashboard marks a
// summary as built on thin data.
const minDaysForSufficiency = 7

// Summary is the composed analytics record for one user and time range. The
// field names mirror the dashboard payload, which predates the API and uses
// camelCase throughout.
type Summary struct {
	TimeRange    TimeRange          `json:"timeRange"`
	Mood         MoodSummary        `json:"mood"`
	Sleep        SleepSummary       `json:"sleep"`
	Stress       StressSummary      `json:"stress"`
	Correlations CorrelationSummary `json:"correlations"`
	RiskLevel    RiskLevel          `json:"riskLevel"`
	DataQuality  DataQuality        `json:"dataQuality"`
}

type MoodSummary struct {
	Average    float64 `json:"average"`
	Trend      Trend   `json:"trend"`
	Volatility float64 `json:"volatility"`
}

type SleepSummary struct {
	AverageHours float64 `json:"averageHours"`
	Consistency  int     `json:"consistency"`
}

type StressSummary struct {
	Average float64 `json:"average"`
	Trend   Trend   `json:"trend"`
}

// CorrelationSummary carries the two signals the dashboard surfaces. The
// exerciseStress key actually holds the exercise/mood signal; the dashboard
// shipped with that name and the key is kept for wire compatibility.
type CorrelationSummary struct {
	SleepMood      *float64 `json:"sleepMood"`
	ExerciseStress *float64 `json:"exerciseStress"`
}

// DataQuality reports how much of the requested range was actually journaled.
type DataQuality struct {
	DaysPresent int  `json:"daysPresent"`
	DaysMissing int  `json:"daysMissing"`
	Sufficient  bool `json:"sufficient"`
}

// Summarize composes the full analytics record for a range, evaluated at now.
// The aggregation window is the trailing tr.Days() entries by count, while the
// risk scorer looks at the trailing seven calendar days and the current
// Monday-start week; the asymmetry is inherited product behavior.
//
// Summarize never fails: a user with zero entries gets a zero-valued summary
// with Sufficient=false rather than an error.
func Summarize(raw []models.JournalEntry, tr TimeRange, now time.Time) Summary {
	all := Normalize(raw)
	window := TrailingByCount(all, tr.Days())
	agg := Aggregate(window)

	recent := SinceCalendarDays(all, 7, now)
	weekly := WeeklyCompletionCount(all, now)
	risk := ScoreRisk(recent, weekly)

	corr := ComputeCorrelations(window)

	present := len(window)
	missing := tr.Days() - present
	if missing < 0 {
		missing = 0
	}

	return Summary{
		TimeRange: tr,
		Mood: MoodSummary{
			Average:    agg.AverageMood,
			Trend:      ClassifyTrend(Moods(window)),
			Volatility: agg.MoodVolatility,
		},
		Sleep: SleepSummary{
			AverageHours: agg.AverageSleepHours,
			Consistency:  agg.SleepConsistencyPct,
		},
		Stress: StressSummary{
			Average: agg.AverageStress,
			Trend:   ClassifyTrend(StressLevels(window)),
		},
		Correlations: CorrelationSummary{
			SleepMood:      corr.SleepMood,
			ExerciseStress: corr.ExerciseMood,
		},
		RiskLevel: risk.Level,
		DataQuality: DataQuality{
			DaysPresent: present,
			DaysMissing: missing,
			Sufficient:  present >= minDaysForSufficiency,
		},
	}
}

// BuildSummary is the service-facing entry point: Summarize evaluated at the
// current wall-clock time.
func BuildSummary(raw []models.JournalEntry, tr TimeRange) Summary {
	return Summarize(raw, tr, time.Now().UTC())
}
