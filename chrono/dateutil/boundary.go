package dateutil

import (
	"time"

	"github.com/jinzhu/now"
)

// Boundaries keep the location of their argument. Ends fall on the last
// minute of the period (23:59:00), not on its last nanosecond.

// DayStart returns the first instant of t's calendar day: 00:00:00, or the end
// of the DST gap on days whose midnight is skipped.
func DayStart(t time.Time) time.Time {
	year, month, day := t.Date()

	return firstInstant(now.With(t).BeginningOfDay(), year, month, day)
}

// DayEnd returns 23:59:00 of t's calendar day.
func DayEnd(t time.Time) time.Time {
	return lastMinute(t)
}

// MonthStart returns 00:00:00 of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	year, month, _ := t.Date()

	return firstInstant(now.With(t).BeginningOfMonth(), year, month, 1)
}

// MonthEnd returns 23:59:00 of the last day of t's month. The year never changes.
func MonthEnd(t time.Time) time.Time {
	return lastMinute(now.With(t).EndOfMonth())
}

// YearStart returns 00:00:00 of January 1st of t's year.
func YearStart(t time.Time) time.Time {
	return firstInstant(now.With(t).BeginningOfYear(), t.Year(), time.January, 1)
}

// YearEnd returns 23:59:00 of December 31st of t's year.
func YearEnd(t time.Time) time.Time {
	return lastMinute(now.With(t).EndOfYear())
}

// nextDayStart returns the first instant of the calendar day after t's.
func nextDayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	nextYear, nextMonth, nextDay := time.Date(year, month, day+1, 0, 0, 0, 0, time.UTC).Date()

	return firstInstant(time.Date(nextYear, nextMonth, nextDay, 0, 0, 0, 0, t.Location()), nextYear, nextMonth, nextDay)
}

// firstInstant corrects a midnight built with time.Date for the given date.
// When DST skips that midnight, time.Date can land on the previous day; the
// date then starts where that zone period ends.
func firstInstant(candidate time.Time, year int, month time.Month, day int) time.Time {
	if y, m, d := candidate.Date(); y == year && m == month && d == day {
		return candidate
	}

	if _, end := candidate.ZoneBounds(); !end.IsZero() {
		return end
	}

	return candidate
}

func lastMinute(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 23, 59, 0, 0, t.Location())
}
