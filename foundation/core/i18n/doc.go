// Package i18n provides the locale data used by the calendar utilities.
//
// Package: i18n
// Title: Locale Conventions
// Description: Resolves BCP 47 locale identifiers such as "en-US" or "ar-AE"
//              into calendar conventions. The only convention the library
//              needs today is the first day of the week, taken from the CLDR
//              week data and overridable per locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-12 v0.2.0: Replaced translation files with a calendar convention
//                       provider built on golang.org/x/text/language
//
// A Provider answers Lookup with (Conventions, true) for a recognised
// locale and (Conventions{}, false) otherwise. Callers decide how to fall
// back; the timex package falls back to DefaultLocale.
//
//	p := i18n.NewCLDRProvider()
//	conv, ok := p.Lookup("en-GB")
//	// conv.FirstDayOfWeek == time.Monday, ok == true
//
// The Unicode "fw" extension is honoured, so "en-US-u-fw-mon" starts the
// week on Monday while keeping the US region.
package i18n
