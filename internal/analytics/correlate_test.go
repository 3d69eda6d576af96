package analytics

import "testing"

func TestComputeCorrelations_SleepMood(t *testing.T) {
	entries := []Entry{
		{Date: day("2024-01-01"), SleepHours: 8, Mood: 8},
		{Date: day("2024-01-02"), SleepHours: 7, Mood: 8},
		{Date: day("2024-01-03"), SleepHours: 5, Mood: 3},
		{Date: day("2024-01-04"), SleepHours: 4, Mood: 3},
		{Date: day("2024-01-05"), SleepHours: 6.5, Mood: 10}, // in neither group
	}

	c := ComputeCorrelations(entries)
	if c.SleepMood == nil {
		t.Fatal("expected sleep/mood signal")
	}
	if *c.SleepMood != 5 {
		t.Errorf("SleepMood = %v, want 5", *c.SleepMood)
	}
	if c.Insight != "Your mood is noticeably better on days with good sleep." {
		t.Errorf("unexpected insight %q", c.Insight)
	}
}

func TestComputeCorrelations_NilOnEmptyPartition(t *testing.T) {
	// Everyone sleeps well and exercises: no poor-sleep or rest-day group.
	entries := []Entry{
		{Date: day("2024-01-01"), SleepHours: 8, Mood: 7, Exercise: []string{"Gym"}},
		{Date: day("2024-01-02"), SleepHours: 7.5, Mood: 6, Exercise: []string{"Running"}},
	}

	c := ComputeCorrelations(entries)
	if c.SleepMood != nil {
		t.Errorf("SleepMood should be nil with no poor-sleep days, got %v", *c.SleepMood)
	}
	if c.ExerciseMood != nil {
		t.Errorf("ExerciseMood should be nil with no rest days, got %v", *c.ExerciseMood)
	}
	if c.ScreenStress != nil {
		t.Errorf("ScreenStress should be nil with no high-screen days, got %v", *c.ScreenStress)
	}
}

func TestComputeCorrelations_InsightRequiresFourEntries(t *testing.T) {
	entries := []Entry{
		{Date: day("2024-01-01"), SleepHours: 8, Mood: 9},
		{Date: day("2024-01-02"), SleepHours: 4, Mood: 2},
		{Date: day("2024-01-03"), SleepHours: 8, Mood: 9},
	}

	c := ComputeCorrelations(entries)
	if c.SleepMood == nil {
		t.Fatal("signals are computed regardless of window size")
	}
	if c.Insight != "" {
		t.Errorf("insight requires at least 4 entries, got %q", c.Insight)
	}
}

func TestComputeCorrelations_DominantByMagnitude(t *testing.T) {
	// Screen/stress signal (-4) dominates exercise/mood (+2) by absolute value.
	entries := []Entry{
		{Date: day("2024-01-01"), Mood: 7, StressLevel: 2, ScreenWork: 4, ScreenEntertainment: 3, Exercise: []string{"Gym"}},
		{Date: day("2024-01-02"), Mood: 7, StressLevel: 2, ScreenWork: 5, ScreenEntertainment: 2, Exercise: []string{"Gym"}},
		{Date: day("2024-01-03"), Mood: 5, StressLevel: 6, ScreenWork: 1, ScreenEntertainment: 1},
		{Date: day("2024-01-04"), Mood: 5, StressLevel: 6, ScreenWork: 2, ScreenEntertainment: 0},
	}

	c := ComputeCorrelations(entries)
	if c.ScreenStress == nil || *c.ScreenStress != -4 {
		t.Fatalf("ScreenStress = %v, want -4", c.ScreenStress)
	}
	if c.ExerciseMood == nil || *c.ExerciseMood != 2 {
		t.Fatalf("ExerciseMood = %v, want 2", c.ExerciseMood)
	}
	if c.Insight != "Lower screen time appears to help keep stress stable." {
		t.Errorf("expected screen/stress insight to dominate, got %q", c.Insight)
	}
}

func TestComputeCorrelations_WeakSignalUsesCautionaryTemplate(t *testing.T) {
	entries := []Entry{
		{Date: day("2024-01-01"), SleepHours: 8, Mood: 5},
		{Date: day("2024-01-02"), SleepHours: 8, Mood: 5},
		{Date: day("2024-01-03"), SleepHours: 4, Mood: 5.5},
		{Date: day("2024-01-04"), SleepHours: 4, Mood: 5.5},
	}

	c := ComputeCorrelations(entries)
	if c.SleepMood == nil || *c.SleepMood != -0.5 {
		t.Fatalf("SleepMood = %v, want -0.5", c.SleepMood)
	}
	if c.Insight != "Your mood tends to dip on low-sleep days." {
		t.Errorf("unexpected insight %q", c.Insight)
	}
}
