package analytics

// RiskLevel is the discrete classification produced by the additive scoring
// rule.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Risk point weights and thresholds. The rule is additive: each warning
// signal contributes its points independently, and the total maps to a level.
const (
	lowMoodThreshold    = 4.0
	highStressThreshold = 7.0
	shortSleepThreshold = 6.0
	minWeeklyEntries    = 3
	highRiskScore       = 5
	mediumRiskScore     = 3
)

// RiskAssessment is the scored outcome of the risk rule.
type RiskAssessment struct {
	Score int
	Level RiskLevel
}

// ScoreRisk applies the additive point rule to the last seven calendar days
// of entries (selected by the caller via SinceCalendarDays) plus the current
// week's entry count:
//
//	average mood < 4            +2
//	average stress > 7          +2
//	any negative-thoughts day   +2
//	average sleep < 6h          +1
//	weekly entry count < 3      +1
//
// Score >= 5 is High, >= 3 Medium, otherwise Low. An empty window skips the
// first four signals entirely, so a user with no recent data and a low weekly
// count still scores Low. Callers gate on data sufficiency separately.
func ScoreRisk(recent []Entry, weeklyEntryCount int) RiskAssessment {
	score := 0

	if n := len(recent); n > 0 {
		var sumMood, sumStress, sumSleep float64
		anyNegative := false
		for _, e := range recent {
			sumMood += e.Mood
			sumStress += e.StressLevel
			sumSleep += e.SleepHours
			if e.NegativeThoughts {
				anyNegative = true
			}
		}

		if sumMood/float64(n) < lowMoodThreshold {
			score += 2
		}
		if sumStress/float64(n) > highStressThreshold {
			score += 2
		}
		if anyNegative {
			score += 2
		}
		if sumSleep/float64(n) < shortSleepThreshold {
			score += 1
		}
	}

	if weeklyEntryCount < minWeeklyEntries {
		score += 1
	}

	return RiskAssessment{Score: score, Level: riskLevelForScore(score)}
}

func riskLevelForScore(score int) RiskLevel {
	switch {
	case score >= highRiskScore:
		return RiskHigh
	case score >= mediumRiskScore:
		return RiskMedium
	default:
		return RiskLow
	}
}
