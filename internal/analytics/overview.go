package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/horizonhq/horizon/backend/internal/models"
)

// insufficientDataExplanation is returned instead of a narrative when the
// window holds too few entries to say anything meaningful.
const insufficientDataExplanation = "There isn’t enough consistent data yet to generate meaningful insights. Keep journaling regularly, and I’ll be able to reflect patterns soon."

// Overview bundles a summary with its plain-language narrative.
type Overview struct {
	Summary     Summary `json:"summary"`
	Explanation string  `json:"explanation"`
}

// BuildOverview composes the summary for a range and narrates it. When the
// data-quality gate fails, the summary still ships but the narrative is
// replaced with a keep-journaling prompt.
func BuildOverview(raw []models.JournalEntry, tr TimeRange, now time.Time) Overview {
	summary := Summarize(raw, tr, now)

	if !summary.DataQuality.Sufficient {
		return Overview{Summary: summary, Explanation: insufficientDataExplanation}
	}
	return Overview{Summary: summary, Explanation: Explain(summary)}
}

// Explain renders the summary as short declarative sentences, one per
// populated metric. Callers gate on data sufficiency first.
func Explain(s Summary) string {
	var lines []string

	lines = append(lines, fmt.Sprintf(
		"Your average mood over this period was %v, with a %s trend.",
		s.Mood.Average, s.Mood.Trend))

	lines = append(lines, fmt.Sprintf(
		"You slept an average of %v hours per night.",
		s.Sleep.AverageHours))

	lines = append(lines, fmt.Sprintf(
		"Your stress levels were generally %s during this time.",
		s.Stress.Trend))

	if s.Correlations.SleepMood != nil {
		lines = append(lines, "There appears to be a relationship between your sleep and mood.")
	}

	lines = append(lines, fmt.Sprintf("Overall, your current risk level is %s.", s.RiskLevel))

	return strings.Join(lines, " ")
}
