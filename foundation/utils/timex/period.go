// File: period.go
// Title: Period Boundaries
// Description: Start and end of the hour, minute, day, month and year
//              containing a value. All results keep the value's location.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: StartOf*/EndOf* helpers
// - 2025-10-12 v0.2.0: Renamed to *Start/*End, added HourStart and MinuteStart
// - 2025-10-19 v0.2.1: HourStart and MinuteStart share Truncate

package timex

import "time"

// MinuteStart returns t with seconds and below set to zero
func MinuteStart(t time.Time) time.Time {
	return Truncate(t, Minute)
}

// HourStart returns t with minutes and below set to zero
func HourStart(t time.Time) time.Time {
	return Truncate(t, Hour)
}

// DayStart returns midnight of the day containing t
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the last nanosecond of the day containing t
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// MonthStart returns midnight of the first day of the month containing t
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last nanosecond of the month containing t
func MonthEnd(t time.Time) time.Time {
	return DayEnd(time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()))
}

// YearStart returns midnight of January 1st of the year containing t
func YearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// YearEnd returns the last nanosecond of December 31st of the year containing t
func YearEnd(t time.Time) time.Time {
	return DayEnd(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()))
}
