// Package cycle maps calendar dates onto positions within a repeating
// multi-day training template. All computations derive directly from the
// plan start date; there is no cached day counter to refresh.
package cycle

import (
	"errors"
	"time"
)

var (
	ErrDateBeforeStart    = errors.New("date is before plan start")
	ErrInvalidCycleLength = errors.New("cycle length must be positive")
)

// Date normalizes t to a civil date: midnight UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from startDate to targetDate.
func DaysBetween(startDate, targetDate time.Time) int {
	start := Date(startDate)
	target := Date(targetDate)
	return int(target.Sub(start).Hours() / 24)
}

// ResolveDay returns the 1-based day index within the template cycle for
// targetDate, given the plan start date and the template cycle length.
func ResolveDay(startDate time.Time, cycleLength int, targetDate time.Time) (int, error) {
	if cycleLength < 1 {
		return 0, ErrInvalidCycleLength
	}

	daysElapsed := DaysBetween(startDate, targetDate)
	if daysElapsed < 0 {
		return 0, ErrDateBeforeStart
	}

	return (daysElapsed % cycleLength) + 1, nil
}

// DaysSinceStart returns the plain 1-based day count since plan start,
// without the modulo. Used for display only.
func DaysSinceStart(startDate, today time.Time) int {
	daysElapsed := DaysBetween(startDate, today)
	if daysElapsed < 0 {
		return 1
	}
	return daysElapsed + 1
}
