// File: provider.go
// Title: Locale Convention Providers
// Description: Defines the Provider interface and its two implementations:
//              CLDRProvider, backed by golang.org/x/text/language and the CLDR
//              week data, and OverrideProvider, which layers configured
//              first-day overrides on top of another provider.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-12
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-12 v0.1.0: Initial implementation
// - 2025-10-19 v0.1.1: Unknown region ZZ is not a recognised locale

package i18n

import (
	"sort"
	"time"

	"golang.org/x/text/language"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

// Conventions holds the calendar conventions of a locale
type Conventions struct {
	Locale         string       // Canonical BCP 47 tag, e.g. "en-GB"
	Region         string       // ISO 3166 region the conventions come from
	FirstDayOfWeek time.Weekday // Day a calendar week starts on
}

// Provider looks up calendar conventions for a locale identifier.
// Lookup must be deterministic and report unknown locales with ok == false.
type Provider interface {
	Lookup(locale string) (conv Conventions, ok bool)
}

// unknownRegion is ISO 3166 "ZZ", which carries no week data of its own
var unknownRegion = language.MustParseRegion("ZZ")

// CLDRProvider resolves locales with the CLDR data compiled into x/text.
// Locales without a region, or with the unknown region ZZ, are not found.
type CLDRProvider struct{}

// NewCLDRProvider creates a provider backed by the CLDR week data
func NewCLDRProvider() *CLDRProvider {
	return &CLDRProvider{}
}

// Lookup implements Provider
func (p *CLDRProvider) Lookup(locale string) (Conventions, bool) {
	tag, ok := parseTag(locale)
	if !ok {
		return Conventions{}, false
	}

	region, confidence := tag.Region()
	if confidence == language.No || region == unknownRegion {
		return Conventions{}, false
	}

	conv := Conventions{
		Locale:         tag.String(),
		Region:         region.String(),
		FirstDayOfWeek: FirstDayForRegion(region.String()),
	}
	if day, ok := fwKeys[tag.TypeForKey("fw")]; ok {
		conv.FirstDayOfWeek = day
	}
	return conv, true
}

// OverrideProvider replaces the first day of the week for selected locales
type OverrideProvider struct {
	base      Provider
	overrides map[string]time.Weekday
}

// NewOverrideProvider wraps base with per-locale first-day overrides.
// Keys are canonicalised; a key that is not a valid locale is rejected.
func NewOverrideProvider(base Provider, overrides map[string]time.Weekday) (*OverrideProvider, error) {
	if base == nil {
		base = NewCLDRProvider()
	}

	canonical := make(map[string]time.Weekday, len(overrides))
	for locale, day := range overrides {
		key, ok := CanonicalLocale(locale)
		if !ok {
			return nil, dherror.New("invalid locale in first day overrides").
				WithCode(dherror.CodeInvalidConfig).
				WithOperation("i18n.NewOverrideProvider").
				WithDetail("locale", locale)
		}
		if day < time.Sunday || day > time.Saturday {
			return nil, dherror.New("invalid weekday in first day overrides").
				WithCode(dherror.CodeInvalidConfig).
				WithOperation("i18n.NewOverrideProvider").
				WithDetail("locale", locale).
				WithDetail("weekday", int(day))
		}
		canonical[key] = day
	}

	return &OverrideProvider{base: base, overrides: canonical}, nil
}

// Lookup implements Provider. An override applies to an exact canonical
// match only; "en" does not override "en-GB".
func (p *OverrideProvider) Lookup(locale string) (Conventions, bool) {
	key, valid := CanonicalLocale(locale)
	day, overridden := p.overrides[key]

	conv, ok := p.base.Lookup(locale)
	if !ok {
		if !valid || !overridden {
			return Conventions{}, false
		}
		conv = Conventions{Locale: key}
	}
	if overridden {
		conv.FirstDayOfWeek = day
	}
	return conv, true
}

// Overrides returns the canonical locales that carry an override, sorted
func (p *OverrideProvider) Overrides() []string {
	keys := make([]string, 0, len(p.overrides))
	for k := range p.overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
