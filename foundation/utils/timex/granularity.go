// File: granularity.go
// Title: Sub-Unit Truncation
// Description: Truncates the time of day of a value to a whole number of
//              milliseconds, seconds, minutes, hours or days, measured on the
//              wall clock of the value's own location.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: TruncateToNearest on time.Duration
// - 2025-10-12 v0.2.0: Granularity enum, wall clock truncation, Ignore* helpers
// - 2025-10-19 v0.2.1: Subtract the wall-clock remainder instead of rebuilding
//                       the value, correct in DST folds and on 32-bit platforms

package timex

import (
	"strings"
	"time"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

// Granularity is the unit a value is truncated to
type Granularity int

const (
	Millisecond Granularity = iota
	Second
	Minute
	Hour
	Day
)

var granularityNames = map[Granularity]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
}

// String returns the lower case name of the granularity
func (g Granularity) String() string {
	if name, ok := granularityNames[g]; ok {
		return name
	}
	return "unknown"
}

// Duration returns the size of one unit, or 0 for an unknown granularity
func (g Granularity) Duration() time.Duration {
	switch g {
	case Millisecond:
		return time.Millisecond
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	default:
		return 0
	}
}

// ParseGranularity parses a granularity name such as "minute" or "ms"
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "millisecond", "milliseconds", "ms":
		return Millisecond, nil
	case "second", "seconds", "s":
		return Second, nil
	case "minute", "minutes", "m":
		return Minute, nil
	case "hour", "hours", "h":
		return Hour, nil
	case "day", "days", "d":
		return Day, nil
	}

	return Millisecond, dherror.New("unknown granularity").
		WithCode(dherror.CodeInvalidFormat).
		WithOperation("timex.ParseGranularity").
		WithDetail("value", s).
		WithDetail("expected", "millisecond, second, minute, hour or day")
}

// Truncate drops every component of t smaller than g. The remainder of the
// wall-clock time of day modulo the unit is subtracted from t, so Truncate(t, Hour)
// equals HourStart(t) in every location and the instant moves by less than one
// unit, also in the repeated hour of a daylight saving fold. Day truncates to
// DayStart. An unknown granularity returns t.
func Truncate(t time.Time, g Granularity) time.Time {
	unit := g.Duration()
	if unit <= 0 {
		return t
	}
	if g == Day {
		return DayStart(t)
	}

	tod := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())

	return t.Add(-(tod % unit))
}

// IgnoreMilliseconds drops the fractional second
func IgnoreMilliseconds(t time.Time) time.Time {
	return Truncate(t, Second)
}

// IgnoreSeconds drops seconds and below
func IgnoreSeconds(t time.Time) time.Time {
	return Truncate(t, Minute)
}

// IgnoreMinutes drops minutes and below
func IgnoreMinutes(t time.Time) time.Time {
	return Truncate(t, Hour)
}

// IgnoreHours drops the whole time of day
func IgnoreHours(t time.Time) time.Time {
	return Truncate(t, Day)
}
