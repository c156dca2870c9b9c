package view

import (
	"time"

	"github.com/waserda/kasir/internal/period"
)

// Timeframe is a preset date range relative to today, or a custom one.
type Timeframe int

const (
	TimeframeToday Timeframe = iota
	TimeframeYesterday
	TimeframeThisWeek
	TimeframeLastWeek
	TimeframeThisMonth
	TimeframeLastMonth
	TimeframeThisYear
	TimeframeAll
	TimeframeCustom
)

var timeframeNames = map[Timeframe]string{
	TimeframeToday:     "Today",
	TimeframeYesterday: "Yesterday",
	TimeframeThisWeek:  "This Week",
	TimeframeLastWeek:  "Last Week",
	TimeframeThisMonth: "This Month",
	TimeframeLastMonth: "Last Month",
	TimeframeThisYear:  "This Year",
	TimeframeAll:       "All Time",
	TimeframeCustom:    "Custom Range",
}

func (t Timeframe) String() string {
	if name, ok := timeframeNames[t]; ok {
		return name
	}

	return "Unknown"
}

// TimeframeRange resolves tf relative to now. Weeks start on Monday. All and Custom
// yield an open range.
func TimeframeRange(tf Timeframe, now time.Time) period.Range {
	switch tf {
	case TimeframeToday:
		return period.Between(now, now)
	case TimeframeYesterday:
		y := now.AddDate(0, 0, -1)
		return period.Between(y, y)
	case TimeframeThisWeek:
		return period.Between(now.AddDate(0, 0, 1-isoWeekday(now)), now)
	case TimeframeLastWeek:
		end := now.AddDate(0, 0, -isoWeekday(now))
		return period.Between(end.AddDate(0, 0, -6), end)
	case TimeframeThisMonth:
		return period.Between(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now)
	case TimeframeLastMonth:
		start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		return period.Between(start, start.AddDate(0, 1, -1))
	case TimeframeThisYear:
		return period.Between(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now)
	}

	return period.Range{}
}

// isoWeekday is 1 for Monday through 7 for Sunday.
func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}

	return int(t.Weekday())
}
