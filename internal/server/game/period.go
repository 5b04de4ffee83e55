package game

import "time"

// PeriodType identifies one rolling aggregation window of the points ledger
type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
	PeriodTotal   PeriodType = "total"
)

// totalEpoch is the fixed anchor shared by every user's all-time aggregate
var totalEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// AllPeriods lists every window a completed game feeds, in upsert order
var AllPeriods = []PeriodType{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodTotal}

// Anchor returns the period start for a calendar date: the date itself,
// the Monday of its week, the first of its month, Jan 1 of its year, or the
// shared epoch for the all-time window
func Anchor(p PeriodType, date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	switch p {
	case PeriodDaily:
		return d
	case PeriodWeekly:
		// time.Weekday has Sunday = 0, shift so Monday anchors the week
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case PeriodMonthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	case PeriodYearly:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case PeriodTotal:
		return totalEpoch
	default:
		return d
	}
}

// AnchorEnd returns the exclusive end of the period starting at the given
// anchor, and false for the unbounded all-time window
func AnchorEnd(p PeriodType, start time.Time) (time.Time, bool) {
	switch p {
	case PeriodDaily:
		return start.AddDate(0, 0, 1), true
	case PeriodWeekly:
		return start.AddDate(0, 0, 7), true
	case PeriodMonthly:
		return start.AddDate(0, 1, 0), true
	case PeriodYearly:
		return start.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
