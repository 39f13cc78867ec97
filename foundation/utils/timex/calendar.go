// File: calendar.go
// Title: Locale-Aware Week Calculations
// Description: Calendar resolves the first day of the week for a locale
//              through an i18n.Provider and derives week starts, week ends
//              and week counts from it. Unknown locales fall back to the
//              calendar's default locale without an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: StartOfWeek/EndOfWeek with a fixed Monday start
// - 2025-10-12 v0.2.0: Calendar with locale resolution, NumberOfWeeks

package timex

import (
	"strings"
	"time"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
	"github.com/StuartShepherd/datetime-helper/foundation/core/i18n"
	"github.com/StuartShepherd/datetime-helper/foundation/core/log"
)

// CalendarOptions configures a Calendar
type CalendarOptions struct {
	// DefaultLocale is used for empty and unrecognised locales (default: "en-US")
	DefaultLocale string

	// Provider supplies locale conventions (default: CLDR week data)
	Provider i18n.Provider

	// Logger receives debug output on locale fallback (default: discard)
	Logger *log.Logger
}

// Calendar answers week questions for locales. It is immutable and safe for
// concurrent use.
type Calendar struct {
	provider      i18n.Provider
	defaultLocale string
	defaultDay    Weekday
	logger        *log.Logger
}

// NewCalendar creates a calendar. The default locale must be known to the
// provider, otherwise a CodeInvalidConfig error is returned.
func NewCalendar(opts CalendarOptions) (*Calendar, error) {
	if opts.Provider == nil {
		opts.Provider = i18n.NewCLDRProvider()
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if strings.TrimSpace(opts.DefaultLocale) == "" {
		opts.DefaultLocale = i18n.DefaultLocale
	}

	conv, ok := opts.Provider.Lookup(opts.DefaultLocale)
	if !ok {
		return nil, dherror.New("default locale is not supported").
			WithCode(dherror.CodeInvalidConfig).
			WithOperation("timex.NewCalendar").
			WithDetail("locale", opts.DefaultLocale)
	}

	return &Calendar{
		provider:      opts.Provider,
		defaultLocale: conv.Locale,
		defaultDay:    Weekday(conv.FirstDayOfWeek),
		logger:        opts.Logger.WithField("component", "timex"),
	}, nil
}

var defaultCalendar = mustDefaultCalendar()

func mustDefaultCalendar() *Calendar {
	c, err := NewCalendar(CalendarOptions{})
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the calendar used by the package level functions:
// CLDR data with the "en-US" default locale.
func Default() *Calendar {
	return defaultCalendar
}

// DefaultLocale returns the canonical default locale of the calendar
func (c *Calendar) DefaultLocale() string {
	return c.defaultLocale
}

// FirstDayOfWeek returns the day weeks start on in locale. Empty and
// unrecognised locales resolve to the default locale's first day.
func (c *Calendar) FirstDayOfWeek(locale string) Weekday {
	if strings.TrimSpace(locale) == "" {
		return c.defaultDay
	}

	conv, ok := c.provider.Lookup(locale)
	if !ok {
		c.logger.Debug("unknown locale, using default", log.Fields{
			"locale":         locale,
			"default_locale": c.defaultLocale,
		})
		return c.defaultDay
	}
	return Weekday(conv.FirstDayOfWeek)
}

// WeekStart returns midnight of the first day of the week containing t.
// The scan steps back one calendar day at a time and stops at MinDate's day.
func (c *Calendar) WeekStart(t time.Time, locale string) time.Time {
	first := c.FirstDayOfWeek(locale)
	y, m, d := t.Date()
	loc := t.Location()

	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	for i := 1; Weekday(day.Weekday()) != first; i++ {
		if day.Year() == MinYear && day.YearDay() == 1 {
			break
		}
		day = time.Date(y, m, d-i, 0, 0, 0, 0, loc)
	}
	return day
}

// WeekEnd returns the last nanosecond of the week containing t
func (c *Calendar) WeekEnd(t time.Time, locale string) time.Time {
	start := c.WeekStart(t, locale)
	return DayEnd(time.Date(start.Year(), start.Month(), start.Day()+6, 0, 0, 0, 0, start.Location()))
}

// NumberOfWeeks returns the whole weeks from the start of from's week to to.
// A to before that week start gives zero or a negative count.
func (c *Calendar) NumberOfWeeks(from, to time.Time, locale string) int {
	days := DifferenceInDays(c.WeekStart(from, locale), to)
	return (days + 1) / 7
}

// FirstDayOfWeek resolves locale with the default calendar
func FirstDayOfWeek(locale string) Weekday {
	return defaultCalendar.FirstDayOfWeek(locale)
}

// WeekStart returns the week start of t in locale with the default calendar
func WeekStart(t time.Time, locale string) time.Time {
	return defaultCalendar.WeekStart(t, locale)
}

// WeekEnd returns the week end of t in locale with the default calendar
func WeekEnd(t time.Time, locale string) time.Time {
	return defaultCalendar.WeekEnd(t, locale)
}

// NumberOfWeeks counts weeks in locale with the default calendar
func NumberOfWeeks(from, to time.Time, locale string) int {
	return defaultCalendar.NumberOfWeeks(from, to, locale)
}
