package analytics

import (
	"testing"
	"time"

	"github.com/horizonhq/horizon/backend/internal/models"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// entry builds a minimal canonical entry for a date and mood.
func entry(date string, mood float64) Entry {
	return Entry{Date: day(date), Mood: mood}
}

func TestNormalize_DefaultsAndOrdering(t *testing.T) {
	raw := []models.JournalEntry{
		{Date: "2024-03-03", Mood: fptr(8), SleepHours: fptr(7.5)},
		{Date: "2024-03-01"}, // every numeric missing
		{Date: "2024-03-02", Mood: fptr(5), NegativeThoughts: sptr("Yes")},
	}

	entries := Normalize(raw)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if !entries[i-1].Date.Before(entries[i].Date) {
			t.Errorf("entries not strictly ascending at index %d", i)
		}
	}

	first := entries[0]
	if first.Mood != 0 || first.SleepHours != 0 || first.StressLevel != 0 {
		t.Errorf("missing numerics should default to zero, got %+v", first)
	}
	if first.NegativeThoughts {
		t.Error("missing negative_thoughts should default to false")
	}
	if !entries[1].NegativeThoughts {
		t.Error("negative_thoughts 'Yes' should map to true")
	}
}

func TestNormalize_NegativeThoughtsMapping(t *testing.T) {
	tests := []struct {
		name string
		val  *string
		want bool
	}{
		{"nil", nil, false},
		{"no", sptr("No"), false},
		{"yes", sptr("Yes"), true},
		{"other text", sptr("sometimes"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Normalize([]models.JournalEntry{{Date: "2024-01-01", NegativeThoughts: tt.val}})
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}
			if entries[0].NegativeThoughts != tt.want {
				t.Errorf("NegativeThoughts = %v, want %v", entries[0].NegativeThoughts, tt.want)
			}
		})
	}
}

func TestNormalize_DuplicateDatesLastWins(t *testing.T) {
	raw := []models.JournalEntry{
		{Date: "2024-03-01", Mood: fptr(3)},
		{Date: "2024-03-01", Mood: fptr(9)},
	}

	entries := Normalize(raw)
	if len(entries) != 1 {
		t.Fatalf("expected duplicates collapsed to 1 entry, got %d", len(entries))
	}
	if entries[0].Mood != 9 {
		t.Errorf("expected last record to win, got mood %v", entries[0].Mood)
	}
}

func TestNormalize_DropsUnparseableDates(t *testing.T) {
	raw := []models.JournalEntry{
		{Date: "not-a-date", Mood: fptr(5)},
		{Date: "2024-03-01", Mood: fptr(6)},
	}

	entries := Normalize(raw)
	if len(entries) != 1 {
		t.Fatalf("expected unparseable date dropped, got %d entries", len(entries))
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	entries := Normalize(nil)
	if entries == nil {
		t.Fatal("expected non-nil slice for empty input")
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty slice, got %d entries", len(entries))
	}
}

func TestTrailingByCount(t *testing.T) {
	series := []Entry{
		entry("2024-01-01", 1),
		entry("2024-01-02", 2),
		entry("2024-01-03", 3),
	}

	tests := []struct {
		name      string
		n         int
		wantLen   int
		wantFirst float64
	}{
		{"window smaller than series", 2, 2, 2},
		{"window equals series", 3, 3, 1},
		{"window larger than series", 10, 3, 1},
		{"zero window", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrailingByCount(series, tt.n)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].Mood != tt.wantFirst {
				t.Errorf("first mood = %v, want %v", got[0].Mood, tt.wantFirst)
			}
		})
	}
}

func TestSinceCalendarDays(t *testing.T) {
	series := []Entry{
		entry("2024-03-01", 5),
		entry("2024-03-05", 5),
		entry("2024-03-10", 5),
	}
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	// 7-day window ending 2024-03-10 starts 2024-03-04.
	got := SinceCalendarDays(series, 7, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries in window, got %d", len(got))
	}
	if !got[0].Date.Equal(day("2024-03-05")) {
		t.Errorf("unexpected first entry %v", got[0].Date)
	}
}

func TestSinceCalendarDays_BoundaryInclusive(t *testing.T) {
	series := []Entry{entry("2024-03-04", 5)}
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	if got := SinceCalendarDays(series, 7, now); len(got) != 1 {
		t.Errorf("cutoff date itself should be included, got %d entries", len(got))
	}
	if got := SinceCalendarDays(series, 6, now); len(got) != 0 {
		t.Errorf("one day past cutoff should be excluded, got %d entries", len(got))
	}
}
