// Package analytics derives dashboard statistics from a user's journal
// history: windowed averages, trends, streaks, correlation insights and a
// composite risk level.
//
// Every function in this package is pure. Nothing here performs I/O, reads
// clocks (callers pass the reference time explicitly), or mutates its input.
// Sparse data never produces an error: each stage resolves missing input to a
// documented default so the summary composer can always return a complete,
// well-formed record.
package analytics

import (
	"sort"
	"time"

	"github.com/horizonhq/horizon/backend/internal/models"
)

// dateLayout is the wire format of the journals date column.
const dateLayout = "2006-01-02"

// Entry is the canonical internal shape of a journal record: dates parsed,
// every numeric field defaulted to zero when absent. Downstream stages assume
// fully-populated values and never re-check for nil.
//
// Missing-as-zero is a deliberate simplification carried over from the
// product's dashboard, not an imputation strategy.
type Entry struct {
	Date                time.Time
	Mood                float64
	SleepHours          float64
	StressLevel         float64
	Exercise            []string
	ScreenWork          float64
	ScreenEntertainment float64
	NegativeThoughts    bool
}

// Normalize converts raw journal records into the canonical ordered series:
// numeric fields defaulted, entries sorted strictly ascending by date, and
// duplicate dates collapsed last-write-wins. Records with an unparseable date
// are dropped; the journals table's date column makes that unreachable in
// practice. Empty input yields an empty (non-nil) slice.
func Normalize(raw []models.JournalEntry) []Entry {
	byDate := make(map[time.Time]Entry, len(raw))

	for _, r := range raw {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			continue
		}

		e := Entry{
			Date:                d,
			Mood:                deref(r.Mood),
			SleepHours:          deref(r.SleepHours),
			StressLevel:         deref(r.StressLevel),
			ScreenWork:          deref(r.ScreenWork),
			ScreenEntertainment: deref(r.ScreenEntertainment),
			NegativeThoughts:    r.NegativeThoughts != nil && *r.NegativeThoughts == "Yes",
		}
		if len(r.Exercise) > 0 {
			e.Exercise = append([]string(nil), r.Exercise...)
		}

		// (user_id, date) is unique upstream; tolerate duplicates anyway.
		byDate[d] = e
	}

	entries := make([]Entry, 0, len(byDate))
	for _, e := range byDate {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })

	return entries
}

// TrailingByCount returns the most recent n entries of an ordered series.
// This is the window policy of the dashboard's generic range filter.
func TrailingByCount(entries []Entry, n int) []Entry {
	if n <= 0 || len(entries) == 0 {
		return []Entry{}
	}
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}

// SinceCalendarDays returns the entries dated within the trailing days-long
// calendar window ending at now, i.e. date >= today-(days-1). This is the
// window policy of the risk scorer. The two policies intentionally diverge;
// see the repository design notes before unifying them.
func SinceCalendarDays(entries []Entry, days int, now time.Time) []Entry {
	if days <= 0 {
		return []Entry{}
	}
	cutoff := dateOnly(now).AddDate(0, 0, -(days - 1))

	selected := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			selected = append(selected, e)
		}
	}
	return selected
}

// Moods extracts the mood series in entry order.
func Moods(entries []Entry) []float64 {
	vals := make([]float64, len(entries))
	for i, e := range entries {
		vals[i] = e.Mood
	}
	return vals
}

// StressLevels extracts the stress series in entry order.
func StressLevels(entries []Entry) []float64 {
	vals := make([]float64, len(entries))
	for i, e := range entries {
		vals[i] = e.StressLevel
	}
	return vals
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
