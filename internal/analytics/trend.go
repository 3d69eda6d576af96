package analytics

// Trend is the coarse direction of a metric's recent average versus an
// earlier one.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// trendEpsilon is the minimum mean shift (on a 0-10 scale) treated as a real
// direction change rather than noise.
const trendEpsilon = 0.3

// ClassifyTrend compares the recent part of a series against the part before
// it. Windows of 14 or more points compare the last seven values to the seven
// preceding them; shorter windows are split in half. Fewer than two points is
// flat by convention, never an error.
func ClassifyTrend(series []float64) Trend {
	n := len(series)
	if n < 2 {
		return TrendFlat
	}

	var earlier, recent []float64
	if n >= 14 {
		earlier = series[n-14 : n-7]
		recent = series[n-7:]
	} else {
		earlier = series[:n/2]
		recent = series[n/2:]
	}

	diff := mean(recent) - mean(earlier)
	switch {
	case diff > trendEpsilon:
		return TrendUp
	case diff < -trendEpsilon:
		return TrendDown
	default:
		return TrendFlat
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
