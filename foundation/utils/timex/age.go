// File: age.go
// Title: Age and Day Difference
// Description: Completed years between two dates and whole days between two
//              instants, both on wall clock fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Age and DaysBetween
// - 2025-10-12 v0.2.0: AgeInYears rejects reversed arguments, DifferenceInDays
//                       no longer overflows time.Duration on long spans

package timex

import (
	"time"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

const secondsPerDay = 24 * 60 * 60

// wallClock reinterprets the calendar fields of t as UTC
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// AgeInYears returns the number of completed years from value to compare,
// e.g. the age at compare of someone born on value. It fails with
// CodeInvalidOrder when value is after compare.
func AgeInYears(value, compare time.Time) (int, error) {
	if wallClock(value).After(wallClock(compare)) {
		return 0, dherror.New("value must not be after compare").
			WithCode(dherror.CodeInvalidOrder).
			WithOperation("timex.AgeInYears").
			WithDetail("value", value.Format(time.RFC3339Nano)).
			WithDetail("compare", compare.Format(time.RFC3339Nano))
	}

	age := compare.Year() - value.Year()

	// Anniversary not reached yet in compare's year
	if value.Month() > compare.Month() ||
		(value.Month() == compare.Month() && value.Day() > compare.Day()) {
		age--
	}

	return age, nil
}

// IsInvalidOrder reports whether err is the reversed-arguments failure of AgeInYears
func IsInvalidOrder(err error) bool {
	return dherror.HasCode(err, dherror.CodeInvalidOrder)
}

// DifferenceInDays returns the whole days from value to compare, truncated
// toward zero. It is negative when compare is before value.
func DifferenceInDays(value, compare time.Time) int {
	from, to := wallClock(value), wallClock(compare)

	secs := to.Unix() - from.Unix()
	nanos := to.Nanosecond() - from.Nanosecond()
	if nanos < 0 && secs > 0 {
		secs--
	} else if nanos > 0 && secs < 0 {
		secs++
	}

	return int(secs / secondsPerDay)
}
