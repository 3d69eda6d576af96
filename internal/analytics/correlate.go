package analytics

import "math"

const (
	// poorSleepHours is the upper bound of the poor-sleep partition. Nights
	// between poorSleepHours and goodSleepHours land in neither group.
	poorSleepHours = 6.0

	// highScreenHours partitions days by combined work + entertainment screen
	// time.
	highScreenHours = 6.0

	// minEntriesForInsight is the smallest window that may emit an insight
	// sentence.
	minEntriesForInsight = 4

	// strongSignal selects the positive-framing template for a dimension.
	strongSignal = 1.0
)

// Correlations carries the group-mean difference signals between tracked
// dimensions. Each signal is nil when one of its partitions is empty; the
// engine never fails on degenerate input. These are difference-of-means
// proxies for relationship strength, not correlation coefficients.
type Correlations struct {
	// SleepMood is avg(mood | sleep >= 7h) - avg(mood | sleep < 6h).
	SleepMood *float64

	// ExerciseMood is avg(mood | exercised) - avg(mood | rested).
	ExerciseMood *float64

	// ScreenStress is avg(stress | screen >= 6h) - avg(stress | screen < 6h).
	ScreenStress *float64

	// Insight is the sentence for the strongest signal, or empty when the
	// window has fewer than minEntriesForInsight entries or no signal could
	// be computed.
	Insight string
}

// ComputeCorrelations derives the pairwise signals for a window and picks the
// dominant one by absolute magnitude. The sentence templates match the
// dashboard's insight-of-the-week card: a positive-leaning phrasing when the
// signal clears strongSignal, a cautionary one otherwise.
func ComputeCorrelations(entries []Entry) Correlations {
	c := Correlations{
		SleepMood:    sleepMoodSignal(entries),
		ExerciseMood: exerciseMoodSignal(entries),
		ScreenStress: screenStressSignal(entries),
	}

	if len(entries) < minEntriesForInsight {
		return c
	}

	type candidate struct {
		strength float64
		text     string
	}
	var candidates []candidate

	if c.SleepMood != nil {
		text := "Your mood tends to dip on low-sleep days."
		if *c.SleepMood > strongSignal {
			text = "Your mood is noticeably better on days with good sleep."
		}
		candidates = append(candidates, candidate{math.Abs(*c.SleepMood), text})
	}
	if c.ExerciseMood != nil {
		text := "Lack of physical activity may be affecting your mood."
		if *c.ExerciseMood > strongSignal {
			text = "Exercise days show a higher average mood."
		}
		candidates = append(candidates, candidate{math.Abs(*c.ExerciseMood), text})
	}
	if c.ScreenStress != nil {
		text := "Lower screen time appears to help keep stress stable."
		if *c.ScreenStress > strongSignal {
			text = "Higher screen time often coincides with increased stress."
		}
		candidates = append(candidates, candidate{math.Abs(*c.ScreenStress), text})
	}

	best := -1.0
	for _, cand := range candidates {
		if cand.strength > best {
			best = cand.strength
			c.Insight = cand.text
		}
	}

	return c
}

func sleepMoodSignal(entries []Entry) *float64 {
	var good, poor []float64
	for _, e := range entries {
		switch {
		case e.SleepHours >= goodSleepHours:
			good = append(good, e.Mood)
		case e.SleepHours < poorSleepHours:
			poor = append(poor, e.Mood)
		}
	}
	return groupDiff(good, poor)
}

func exerciseMoodSignal(entries []Entry) *float64 {
	var active, rest []float64
	for _, e := range entries {
		if len(e.Exercise) > 0 {
			active = append(active, e.Mood)
		} else {
			rest = append(rest, e.Mood)
		}
	}
	return groupDiff(active, rest)
}

func screenStressSignal(entries []Entry) *float64 {
	var high, low []float64
	for _, e := range entries {
		if e.ScreenWork+e.ScreenEntertainment >= highScreenHours {
			high = append(high, e.StressLevel)
		} else {
			low = append(low, e.StressLevel)
		}
	}
	return groupDiff(high, low)
}

// groupDiff returns the rounded difference of group means, or nil when
// either group is empty.
func groupDiff(a, b []float64) *float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	diff := round2(mean(a) - mean(b))
	return &diff
}
