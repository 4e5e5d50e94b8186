// Package period classifies dates into calendar-month buckets. All functions
// are pure; the caller supplies the reference "now" so classification is
// deterministic and testable.
package period

import "time"

// Range identifies a history filter bucket.
type Range string

const (
	RangeThisMonth   Range = "this_month"
	RangeLastMonth   Range = "last_month"
	RangeLast3Months Range = "last_3_months"
	RangeThisYear    Range = "this_year"
	RangeNextMonth   Range = "next_month"
	RangeAll         Range = "all"
)

// ParseRange parses a range filter string. An empty string means "all".
func ParseRange(s string) (Range, bool) {
	switch Range(s) {
	case RangeThisMonth, RangeLastMonth, RangeLast3Months, RangeThisYear, RangeNextMonth, RangeAll:
		return Range(s), true
	case "":
		return RangeAll, true
	}
	return "", false
}

// monthIndex flattens a date to a single comparable month number so that
// month comparisons survive year rollover (December -> January).
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// SameMonth reports whether d falls in the same calendar month and year as now.
func SameMonth(d, now time.Time) bool {
	return monthIndex(d) == monthIndex(now)
}

// IsFutureMonth reports whether d falls in a calendar month strictly later
// than now's. Dates later in the current month are not future.
func IsFutureMonth(d, now time.Time) bool {
	return monthIndex(d) > monthIndex(now)
}

// InRange reports whether d falls inside the given bucket relative to now.
func InRange(d, now time.Time, r Range) bool {
	switch r {
	case RangeThisMonth:
		return SameMonth(d, now)
	case RangeLastMonth:
		return monthIndex(d) == monthIndex(now)-1
	case RangeLast3Months:
		idx := monthIndex(d)
		return idx >= monthIndex(now)-2 && idx <= monthIndex(now)
	case RangeThisYear:
		return d.Year() == now.Year()
	case RangeNextMonth:
		return monthIndex(d) == monthIndex(now)+1
	case RangeAll:
		return true
	}
	return false
}

// AddMonths advances t by n calendar months, clamping the day to the last
// day of the target month. Unlike time.AddDate, Jan 31 + 1 month yields
// Feb 28/29 rather than rolling over into March. The clock and location are
// preserved.
func AddMonths(t time.Time, n int) time.Time {
	total := monthIndex(t) + n
	year := total / 12
	month := time.Month(total%12 + 1)

	day := t.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
