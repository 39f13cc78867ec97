// Package timex provides calendar date helpers: locale-aware week starts,
// period boundaries, sub-unit truncation, field validation and age arithmetic.
//
// Package: timex
// Title: Calendar Date Utilities
// Description: Pure functions on time.Time values. Every calculation works on
//              the wall clock fields of the value's own location; nothing is
//              converted between time zones.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-10-12 v0.2.0: Reduced to calendar arithmetic, locale-aware weeks
//
// # Weeks and Locales
//
// The first day of the week depends on the locale. A Calendar resolves it via
// an i18n.Provider; empty and unknown locales fall back to the calendar's
// default locale ("en-US", Sunday) and never produce an error:
//
//	timex.FirstDayOfWeek("en-GB")                 // Monday
//	timex.FirstDayOfWeek("ar-AE")                 // Saturday
//	timex.FirstDayOfWeek("not-a-real-locale")     // Sunday
//
//	start := timex.WeekStart(t, "en-GB")          // Monday 00:00 of t's week
//	weeks := timex.NumberOfWeeks(from, to, "en-US")
//
// The package level functions use Default(). Applications with configured
// overrides build their own:
//
//	provider, _ := i18n.NewOverrideProvider(nil, map[string]time.Weekday{"en-US": time.Monday})
//	cal, err := timex.NewCalendar(timex.CalendarOptions{Provider: provider})
//
// # Period Boundaries
//
// MinuteStart, HourStart, DayStart, MonthStart and YearStart zero every field
// below the period; DayEnd, MonthEnd and YearEnd return its last nanosecond.
//
// # Truncation
//
// Truncate rounds the time of day down to a multiple of a Granularity:
//
//	timex.Truncate(t, timex.Second)   // same as IgnoreMilliseconds(t)
//	timex.Truncate(t, timex.Hour)     // same as HourStart(t)
//
// # Validation
//
// IsValidYear accepts MinYear..MaxYear (1..9999). IsValidDate and IsValidDay
// account for leap years; IsValidTime takes an optional second.
//
// # Age and Differences
//
// AgeInYears fails with error code INVALID_ORDER when its first argument is
// after its second:
//
//	age, err := timex.AgeInYears(birth, today)
//	if timex.IsInvalidOrder(err) {
//		// arguments reversed
//	}
//
// DifferenceInDays returns whole days, truncated toward zero.
package timex
