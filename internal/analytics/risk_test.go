package analytics

import "testing"

func TestScoreRisk(t *testing.T) {
	badWeek := make([]Entry, 7)
	for i := range badWeek {
		badWeek[i] = Entry{
			Date:             day("2024-03-01").AddDate(0, 0, i),
			Mood:             2,
			StressLevel:      9,
			SleepHours:       4,
			NegativeThoughts: true,
		}
	}

	goodDay := Entry{Date: day("2024-03-07"), Mood: 8, StressLevel: 2, SleepHours: 8}

	tests := []struct {
		name      string
		recent    []Entry
		weekly    int
		wantScore int
		wantLevel RiskLevel
	}{
		{"every signal firing", badWeek, 1, 8, RiskHigh},
		{"every signal except weekly", badWeek, 5, 7, RiskHigh},
		{"healthy week", []Entry{goodDay, goodDay, goodDay}, 5, 0, RiskLow},
		{"healthy but sparse week", []Entry{goodDay}, 2, 1, RiskLow},
		{"no recent data at all", nil, 0, 1, RiskLow},
		{
			"low mood plus high stress",
			[]Entry{
				{Date: day("2024-03-05"), Mood: 3, StressLevel: 8, SleepHours: 7},
				{Date: day("2024-03-06"), Mood: 3, StressLevel: 8, SleepHours: 7},
			},
			4, 4, RiskMedium,
		},
		{
			"single negative-thoughts day",
			[]Entry{
				goodDay,
				{Date: day("2024-03-06"), Mood: 7, StressLevel: 3, SleepHours: 8, NegativeThoughts: true},
			},
			4, 2, RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRisk(tt.recent, tt.weekly)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
		})
	}
}

func TestRiskLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLow},
		{2, RiskLow},
		{3, RiskMedium},
		{4, RiskMedium},
		{5, RiskHigh},
		{8, RiskHigh},
	}

	for _, tt := range tests {
		if got := riskLevelForScore(tt.score); got != tt.want {
			t.Errorf("riskLevelForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
