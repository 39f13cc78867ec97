// File: validate.go
// Title: Calendar Field Validation and Weekday Predicates
// Description: Range checks for year, month, day, hour, minute and second
//              fields and weekday classification of a value.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: IsWeekend/IsWeekday
// - 2025-10-12 v0.2.0: Field validators, per-day predicates, representable range

package timex

import "time"

// Representable year range
const (
	MinYear = 1
	MaxYear = 9999
)

// MinDate returns the earliest representable instant, 0001-01-01T00:00:00Z
func MinDate() time.Time {
	return time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// MaxDate returns the latest representable instant, 9999-12-31T23:59:59.999999999Z
func MaxDate() time.Time {
	return time.Date(MaxYear, time.December, 31, 23, 59, 59, 999999999, time.UTC)
}

// ===============================
// Weekday Predicates
// ===============================

// IsWeekend reports whether t falls on a Saturday or Sunday
func IsWeekend(t time.Time) bool {
	return IsSaturday(t) || IsSunday(t)
}

// IsWeekday reports whether t falls on Monday through Friday
func IsWeekday(t time.Time) bool {
	return !IsWeekend(t)
}

func isDay(t time.Time, w Weekday) bool {
	return Weekday(t.Weekday()) == w
}

// IsSunday reports whether t falls on a Sunday
func IsSunday(t time.Time) bool { return isDay(t, Sunday) }

// IsMonday reports whether t falls on a Monday
func IsMonday(t time.Time) bool { return isDay(t, Monday) }

// IsTuesday reports whether t falls on a Tuesday
func IsTuesday(t time.Time) bool { return isDay(t, Tuesday) }

// IsWednesday reports whether t falls on a Wednesday
func IsWednesday(t time.Time) bool { return isDay(t, Wednesday) }

// IsThursday reports whether t falls on a Thursday
func IsThursday(t time.Time) bool { return isDay(t, Thursday) }

// IsFriday reports whether t falls on a Friday
func IsFriday(t time.Time) bool { return isDay(t, Friday) }

// IsSaturday reports whether t falls on a Saturday
func IsSaturday(t time.Time) bool { return isDay(t, Saturday) }

// ===============================
// Field Validation
// ===============================

// IsValidHour reports whether 0 <= hour <= 23
func IsValidHour(hour int) bool {
	return hour >= 0 && hour <= 23
}

// IsValidMinute reports whether 0 <= minute <= 59
func IsValidMinute(minute int) bool {
	return minute >= 0 && minute <= 59
}

// IsValidSecond reports whether 0 <= second <= 59
func IsValidSecond(second int) bool {
	return second >= 0 && second <= 59
}

// IsValidYear reports whether year lies in MinYear..MaxYear
func IsValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// IsValidMonth reports whether 1 <= month <= 12
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysPerMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the month, or 0 when the year or
// month is out of range.
func DaysInMonth(year, month int) int {
	if !IsValidYear(year) || !IsValidMonth(month) {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// IsValidDay reports whether day exists in the given month of the given year
func IsValidDay(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// IsValidDate reports whether year, month and day name a representable date
func IsValidDate(year, month, day int) bool {
	return IsValidYear(year) && IsValidMonth(month) && IsValidDay(year, month, day)
}

// IsValidTime reports whether hour, minute and the optional second (default 0)
// name a valid time of day.
func IsValidTime(hour, minute int, second ...int) bool {
	s := 0
	if len(second) > 0 {
		s = second[0]
	}
	return IsValidHour(hour) && IsValidMinute(minute) && IsValidSecond(s)
}
