// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides and exposes typed sections.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-12 v0.2.0: Calendar and log sections

/*
Package config provides configuration loading for the datecal tool.

Files are TOML (github.com/BurntSushi/toml) or YAML (gopkg.in/yaml.v3); the
format follows the file extension. Values are addressed with dot notation and
every key can be overridden from the environment:

	cfg, err := config.LoadWithOptions("datecal.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "DATECAL",
	})

	// DATECAL_CALENDAR_DEFAULT_LOCALE wins over the file
	locale := cfg.GetString("calendar.default_locale", "en-US")

A complete file:

	[calendar]
	default_locale = "en-GB"

	[calendar.first_day_overrides]
	"en-US" = "monday"
	"ar-AE" = "sunday"

	[log]
	level  = "debug"
	format = "console"

Calendar and Logging return the two sections as typed values after checking
them against ValidationRules. Discover searches the usual locations when no
file is named explicitly.
*/
package config
