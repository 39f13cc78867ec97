// File: locale.go
// Title: Locale Parsing and Normalization
// Description: Parses, canonicalises and validates locale identifiers and
//              picks the preferred supported locale from an Accept-Language
//              header or the POSIX locale environment.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2025-10-12 v0.2.0: Parsing delegated to golang.org/x/text/language,
//                       detection now checks candidates against a Provider
// - 2025-10-19 v0.2.1: EnvironmentLocale, removed NormalizeLocale and SplitLocale

package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

// DefaultLocale is the locale used when none is given or it is not recognised
const DefaultLocale = "en-US"

// parseTag parses a locale identifier, accepting "_" as a separator.
// The root tag "und" is not a usable locale, and neither is a tag carrying an
// unregistered extension singleton ("not-a-real-locale" parses as one).
func parseTag(locale string) (language.Tag, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if s == "" {
		return language.Und, false
	}

	tag, err := language.Parse(s)
	if err != nil || tag.IsRoot() {
		return language.Und, false
	}

	for _, ext := range tag.Extensions() {
		switch ext.Type() {
		case 'u', 't', 'x':
		default:
			return language.Und, false
		}
	}
	return tag, true
}

// CanonicalLocale returns the canonical BCP 47 form of locale ("en_gb" -> "en-GB")
func CanonicalLocale(locale string) (string, bool) {
	tag, ok := parseTag(locale)
	if !ok {
		return "", false
	}
	return tag.String(), true
}

// ValidateLocale reports whether locale is a well-formed, known locale
func ValidateLocale(locale string) error {
	if strings.TrimSpace(locale) == "" {
		return dherror.New("locale cannot be empty").
			WithCode(dherror.CodeValidationFailed).
			WithOperation("i18n.ValidateLocale")
	}

	if _, ok := parseTag(locale); !ok {
		return dherror.New("invalid locale format").
			WithCode(dherror.CodeInvalidFormat).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "BCP 47, e.g. 'en', 'en-US'")
	}

	return nil
}

// DisplayName returns the English name of a locale, or the input when unknown
func DisplayName(locale string) string {
	tag, ok := parseTag(locale)
	if !ok {
		return locale
	}
	if name := display.Tags(language.English).Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// PreferredLocale returns the highest weighted locale of an Accept-Language
// header that provider recognises.
func PreferredLocale(acceptLanguage string, provider Provider) (string, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return "", false
	}
	if provider == nil {
		provider = NewCLDRProvider()
	}

	tags, weights, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return "", false
	}

	for i, tag := range tags {
		if weights[i] <= 0 {
			continue
		}
		if conv, ok := provider.Lookup(tag.String()); ok {
			return conv.Locale, true
		}
	}
	return "", false
}

// localeEnvVars are the POSIX variables that select the time locale, in
// precedence order
var localeEnvVars = []string{"LC_ALL", "LC_TIME", "LANG"}

// EnvironmentLocale returns the locale selected by LC_ALL, LC_TIME or LANG.
// The first variable that is set decides, as in POSIX; "C", "POSIX" and values
// provider does not recognise yield ok == false. A nil getenv reads the
// process environment.
func EnvironmentLocale(getenv func(string) string, provider Provider) (string, bool) {
	if getenv == nil {
		getenv = os.Getenv
	}

	for _, key := range localeEnvVars {
		if value := strings.TrimSpace(getenv(key)); value != "" {
			return PreferredLocale(posixLocale(value), provider)
		}
	}
	return "", false
}

// posixLocale turns "de_DE.UTF-8@euro" into "de-DE"
func posixLocale(value string) string {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}
