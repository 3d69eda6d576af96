package analytics

import "fmt"

// TimeRange identifies the analytics window requested by a caller.
type TimeRange string

const (
	TimeRange7d  TimeRange = "7d"
	TimeRange30d TimeRange = "30d"
	TimeRange90d TimeRange = "90d"
)

// Days returns the number of calendar days the range covers.
func (tr TimeRange) Days() int {
	switch tr {
	case TimeRange7d:
		return 7
	case TimeRange30d:
		return 30
	case TimeRange90d:
		return 90
	default:
		return 0
	}
}

// ParseTimeRange accepts the canonical tokens ("7d", "30d", "90d") as well as
// the bare day counts ("7", "30", "90") used by the dashboard's range query
// parameter. Anything else is a caller error.
func ParseTimeRange(s string) (TimeRange, error) {
	switch s {
	case "7", "7d":
		return TimeRange7d, nil
	case "30", "30d":
		return TimeRange30d, nil
	case "90", "90d":
		return TimeRange90d, nil
	default:
		return "", fmt.Errorf("invalid time range %q: must be one of 7d, 30d, 90d", s)
	}
}
