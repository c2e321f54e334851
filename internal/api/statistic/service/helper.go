package statisticService

import (
	"CitizenVoice/internal/api/statistic"
	"time"
)

// YearRange returns the UTC bounds [Jan 1 of year, Jan 1 of year+1).
func YearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

// CountByMonth buckets timestamps by their UTC month. Timestamps outside
// year are ignored.
func CountByMonth(year int, timestamps []time.Time) statistic.MonthlyCounts {
	var counts statistic.MonthlyCounts
	for _, ts := range timestamps {
		if i, ok := monthIndex(year, ts); ok {
			counts[i]++
		}
	}
	return counts
}

func monthIndex(year int, ts time.Time) (int, bool) {
	ts = ts.UTC()
	if ts.Year() != year {
		return 0, false
	}
	return int(ts.Month()) - 1, true
}
