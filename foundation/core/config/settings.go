// File: settings.go
// Title: Typed Configuration Sections
// Description: Typed views over the calendar and log sections of a
//              datecal configuration file.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-12
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-12 v0.1.0: Initial implementation
// - 2025-10-19 v0.1.1: Locales checked with i18n.ValidateLocale

package config

import (
	"fmt"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
	"github.com/StuartShepherd/datetime-helper/foundation/core/i18n"
	"github.com/StuartShepherd/datetime-helper/foundation/core/log"
)

// Configuration keys
const (
	KeyDefaultLocale     = "calendar.default_locale"
	KeyFirstDayOverrides = "calendar.first_day_overrides"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
)

// Defaults used when a key is absent
const (
	DefaultLocale    = "en-US"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// CalendarSettings holds the [calendar] section
type CalendarSettings struct {
	DefaultLocale string

	// FirstDayOverrides maps locales to weekday names ("en-US" -> "monday")
	FirstDayOverrides map[string]string
}

// LoggingSettings holds the [log] section
type LoggingSettings struct {
	Level  log.Level
	Format log.Format
}

var calendarRules = ValidationRules{
	KeyDefaultLocale:     {Type: "string", Check: checkLocale},
	KeyFirstDayOverrides: {Type: "map", Check: checkOverrideLocales},
}

func checkLocale(value interface{}) error {
	return i18n.ValidateLocale(value.(string))
}

// checkOverrideLocales validates the keys of the overrides table
func checkOverrideLocales(value interface{}) error {
	for locale := range value.(map[string]interface{}) {
		if err := i18n.ValidateLocale(locale); err != nil {
			return fmt.Errorf("override %q: %w", locale, err)
		}
	}
	return nil
}

var loggingRules = ValidationRules{
	KeyLogLevel:  {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}},
	KeyLogFormat: {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
}

// Calendar returns the calendar section. Locales must be well-formed BCP 47
// tags; weekday names are left to the caller.
func (c *Config) Calendar() (CalendarSettings, error) {
	if err := c.Validate(calendarRules).Err(); err != nil {
		return CalendarSettings{}, dherror.Wrap(err, "invalid calendar settings").
			WithOperation("config.Calendar")
	}

	return CalendarSettings{
		DefaultLocale:     c.GetString(KeyDefaultLocale, DefaultLocale),
		FirstDayOverrides: c.GetStringMap(KeyFirstDayOverrides),
	}, nil
}

// Logging returns the log section
func (c *Config) Logging() (LoggingSettings, error) {
	if err := c.Validate(loggingRules).Err(); err != nil {
		return LoggingSettings{}, dherror.Wrap(err, "invalid log settings").
			WithOperation("config.Logging")
	}

	// Both values passed the OneOf check above
	level, _ := log.ParseLevel(c.GetString(KeyLogLevel, DefaultLogLevel))
	format, _ := log.ParseFormat(c.GetString(KeyLogFormat, DefaultLogFormat))

	return LoggingSettings{Level: level, Format: format}, nil
}
