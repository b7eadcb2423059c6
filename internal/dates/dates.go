// Package dates holds the pure calendar rules shared by the store, the
// tracker engine, and the views: date-key formatting, month arithmetic,
// and the boundaries that gate entry logging and calendar navigation.
package dates

import "time"

// DayFormat is the canonical entry key layout (YYYY-MM-DD).
const DayFormat = "2006-01-02"

// Clock supplies "now" so date-boundary logic is testable without waiting
// for real time to pass.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

// Fixed returns a Clock frozen at t. Intended for tests.
func Fixed(t time.Time) Clock { return fixedClock(t) }

// Today returns the clock's current calendar date at midnight.
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Format renders a date as its entry key.
func Format(t time.Time) string {
	return t.Format(DayFormat)
}

// Parse reads an entry key back into a midnight date.
func Parse(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsFutureStrict reports whether d is strictly after the clock's current
// calendar date, ignoring time of day.
func IsFutureStrict(d time.Time, c Clock) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	today := Today(c)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(today)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month
// (time.Sunday == 0).
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// MinNavigableMonth returns the earliest month the calendar may show:
// the first of October of the clock's current year. Callers capture it
// once at startup; it does not advance across a year boundary within a
// session.
func MinNavigableMonth(c Clock) time.Time {
	return time.Date(c.Now().Year(), time.October, 1, 0, 0, 0, 0, time.Local)
}
