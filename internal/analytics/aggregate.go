package analytics

import (
	"math"
	"strings"
	"time"
)

const (
	// goodSleepHours is the nightly threshold counted toward sleep consistency.
	goodSleepHours = 7.0

	// WeeklyTarget is the completion-ring denominator: one entry per day.
	WeeklyTarget = 7
)

// DaySnapshot pairs a calendar date with its mood, used for best/worst day.
type DaySnapshot struct {
	Date time.Time
	Mood float64
}

// Aggregates holds the windowed scalar statistics of a mood series.
type Aggregates struct {
	AverageMood            float64
	AverageStress          float64
	AverageSleepHours      float64
	MoodVolatility         float64
	BestDay                *DaySnapshot
	WorstDay               *DaySnapshot
	SleepConsistencyPct    int
	ExerciseConsistencyPct int
	ExerciseCategories     map[string]int
}

// Aggregate computes scalar and distributional statistics over a window.
// Averages treat missing values as zero (the Normalizer already defaulted
// them) and are rounded to two decimals. An empty window yields the zero
// Aggregates with nil best/worst day.
func Aggregate(entries []Entry) Aggregates {
	agg := Aggregates{ExerciseCategories: map[string]int{}}
	n := len(entries)
	if n == 0 {
		return agg
	}

	var sumMood, sumStress, sumSleep float64
	var goodSleepDays, exerciseDays int

	for _, e := range entries {
		sumMood += e.Mood
		sumStress += e.StressLevel
		sumSleep += e.SleepHours

		if e.SleepHours >= goodSleepHours {
			goodSleepDays++
		}
		if len(e.Exercise) > 0 {
			exerciseDays++
			for _, tag := range e.Exercise {
				agg.ExerciseCategories[exerciseCategory(tag)]++
			}
		}

		// Stable reduce from the start: ties keep the earliest date.
		if agg.BestDay == nil || e.Mood > agg.BestDay.Mood {
			agg.BestDay = &DaySnapshot{Date: e.Date, Mood: e.Mood}
		}
		if agg.WorstDay == nil || e.Mood < agg.WorstDay.Mood {
			agg.WorstDay = &DaySnapshot{Date: e.Date, Mood: e.Mood}
		}
	}

	agg.AverageMood = round2(sumMood / float64(n))
	agg.AverageStress = round2(sumStress / float64(n))
	agg.AverageSleepHours = round2(sumSleep / float64(n))
	agg.MoodVolatility = MoodVolatility(entries)
	agg.SleepConsistencyPct = roundPct(goodSleepDays, n)
	agg.ExerciseConsistencyPct = roundPct(exerciseDays, n)

	return agg
}

// MoodVolatility is the mean absolute day-over-day mood change, rounded to
// two decimals. Windows of fewer than two entries have zero volatility.
func MoodVolatility(entries []Entry) float64 {
	n := len(entries)
	if n < 2 {
		return 0
	}

	var sum float64
	for i := 1; i < n; i++ {
		sum += math.Abs(entries[i].Mood - entries[i-1].Mood)
	}
	return round2(sum / float64(n-1))
}

// Streaks computes the journaling streak counters over the full (all-time)
// entry history, which must be sorted ascending by date. bestStreak is the
// longest run of consecutive calendar dates; currentStreak is the run ending
// at the most recent entry date, whether or not that date is today.
func Streaks(entries []Entry) (currentStreak, bestStreak int) {
	if len(entries) == 0 {
		return 0, 0
	}

	best, run := 1, 1
	for i := 1; i < len(entries); i++ {
		if calendarDaysBetween(entries[i-1].Date, entries[i].Date) == 1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}

	current := 1
	for i := len(entries) - 1; i > 0; i-- {
		if calendarDaysBetween(entries[i-1].Date, entries[i].Date) == 1 {
			current++
		} else {
			break
		}
	}

	return current, best
}

// WeekBounds returns the Monday and Sunday of the week containing now,
// as UTC dates.
func WeekBounds(now time.Time) (time.Time, time.Time) {
	start := startOfWeek(now)
	return start, start.AddDate(0, 0, 6)
}

// WeeklyCompletionCount counts the entries dated inside the current
// Monday-to-Sunday week containing now.
func WeeklyCompletionCount(entries []Entry, now time.Time) int {
	start, end := WeekBounds(now)

	count := 0
	for _, e := range entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			count++
		}
	}
	return count
}

// exerciseCategory collapses free-text "Other: <detail>" tags into the plain
// "Other" category so aggregation buckets stay bounded.
func exerciseCategory(tag string) string {
	if tag == "Other" || strings.HasPrefix(tag, "Other:") {
		return "Other"
	}
	return tag
}

// startOfWeek returns the Monday of the week containing t, as a UTC date.
func startOfWeek(t time.Time) time.Time {
	d := dateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return d.AddDate(0, 0, -offset)
}

func calendarDaysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundPct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
