// File: weekday.go
// Title: Weekday Type
// Description: Weekday enumeration over time.Weekday with cyclic navigation
//              and name parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Weekday type as part of the business day helpers
// - 2025-10-12 v0.2.0: Moved to its own file, added Next, Prev and ParseWeekday

package timex

import (
	"strings"
	"time"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

// Weekday represents days of the week
type Weekday time.Weekday

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// String returns the string representation of the weekday
func (w Weekday) String() string {
	return time.Weekday(w).String()
}

// Next returns the following day, wrapping from Saturday to Sunday
func (w Weekday) Next() Weekday {
	return (w + 1) % 7
}

// Prev returns the preceding day, wrapping from Sunday to Saturday
func (w Weekday) Prev() Weekday {
	return (w + 6) % 7
}

// IsValid reports whether w is one of the seven days
func (w Weekday) IsValid() bool {
	return w >= Sunday && w <= Saturday
}

// ParseWeekday parses a full weekday name or its three letter abbreviation,
// ignoring case ("monday", "Mon", "MON").
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for w := Sunday; w <= Saturday; w++ {
		full := strings.ToLower(w.String())
		if name == full || name == full[:3] {
			return w, nil
		}
	}

	return Sunday, dherror.New("unknown weekday").
		WithCode(dherror.CodeInvalidFormat).
		WithOperation("timex.ParseWeekday").
		WithDetail("value", s)
}
