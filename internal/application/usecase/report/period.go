// Package report contains the reporting and budget-evaluation use cases.
package report

import "time"

// Period represents a symbolic time-window selector for reports.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// DefaultPeriod is used when a period token is absent or unrecognized.
const DefaultPeriod = PeriodMonth

// ParsePeriod maps a period token to a Period. Unrecognized tokens fall
// back to the default period silently; this fallback is intentional and
// mirrors how report links behave in the UI.
func ParsePeriod(token string) Period {
	switch Period(token) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(token)
	default:
		return DefaultPeriod
	}
}

// Interval is a concrete date window resolved from a Period.
// Start is inclusive; End is the reference instant and is treated as
// inclusive at day granularity by the aggregator.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ResolveInterval resolves a period against a reference instant.
//
//   - week:  the 7 calendar days up to now (not week-aligned)
//   - month: the first day of now's month up to now; the partial current
//     month is included rather than extending to month end
//   - year:  January 1st of now's year up to now
//
// The resolver is pure: callers inject now for testability.
func ResolveInterval(period Period, now time.Time) Interval {
	loc := now.Location()

	var start time.Time
	switch period {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default: // month, and any token ParsePeriod let through
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}

	return Interval{Start: start, End: now}
}

// truncateToDay drops the time-of-day component of a timestamp.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Contains reports whether a date falls within the interval, comparing at
// calendar-day granularity and treating both ends as inclusive.
func (i Interval) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(i.Start)) && !d.After(truncateToDay(i.End))
}
