// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, environment overrides, discovery,
//              validation and the typed calendar and log sections.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-10-12 v0.2.0: Moved to testify, typed section tests
// - 2025-10-19 v0.2.1: Locale validation cases

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
	"github.com/StuartShepherd/datetime-helper/foundation/core/log"
)

const tomlConfig = `
[calendar]
default_locale = "en-GB"

[calendar.first_day_overrides]
"en-US" = "monday"
"ar-AE" = "sunday"

[log]
level = "debug"
format = "json"
`

const yamlConfig = `
calendar:
  default_locale: ar-AE
  first_day_overrides:
    en-GB: sunday
log:
  level: error
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("toml", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "datecal.toml", tomlConfig))
		require.NoError(t, err)

		assert.Equal(t, FormatTOML, cfg.Format())
		assert.Equal(t, "en-GB", cfg.GetString(KeyDefaultLocale))
		assert.Equal(t, map[string]string{"en-US": "monday", "ar-AE": "sunday"}, cfg.GetStringMap(KeyFirstDayOverrides))
		assert.True(t, cfg.Has("log.level"))
		assert.False(t, cfg.Has("log.missing"))
	})

	t.Run("yaml", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "datecal.yaml", yamlConfig))
		require.NoError(t, err)

		assert.Equal(t, FormatYAML, cfg.Format())
		assert.Equal(t, "ar-AE", cfg.GetString(KeyDefaultLocale))
		assert.Equal(t, map[string]string{"en-GB": "sunday"}, cfg.GetStringMap(KeyFirstDayOverrides))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.toml"))
		require.Error(t, err)
		assert.True(t, dherror.HasCode(err, dherror.CodeNotFound))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		require.Error(t, err)
		assert.True(t, dherror.HasCode(err, dherror.CodeValidationFailed))
	})

	t.Run("broken file", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "broken.toml", "[calendar\n"))
		require.Error(t, err)
		assert.True(t, dherror.HasCode(err, dherror.CodeInvalidConfig))
	})
}

func TestLoadFromStringDefaults(t *testing.T) {
	cfg, err := LoadFromString(`[log]
level = "info"
`, FormatTOML, LoadOptions{Defaults: map[string]interface{}{
		"log": map[string]interface{}{"format": "text", "level": "fatal"},
	}})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.GetString(KeyLogLevel))
	assert.Equal(t, "text", cfg.GetString(KeyLogFormat))
}

func TestEnvironmentOverrides(t *testing.T) {
	cfg, err := LoadFromString(tomlConfig, FormatTOML, LoadOptions{EnvPrefix: "datecal"})
	require.NoError(t, err)

	assert.Equal(t, "DATECAL_CALENDAR_DEFAULT_LOCALE", cfg.EnvKey(KeyDefaultLocale))

	t.Setenv("DATECAL_CALENDAR_DEFAULT_LOCALE", "de-DE")
	t.Setenv("DATECAL_CALENDAR_FIRST_DAY_OVERRIDES", "fr-FR=sunday, ,bad, en-NZ = sat")

	assert.True(t, Empty("datecal").Has(KeyDefaultLocale))
	assert.False(t, Empty("other").Has(KeyDefaultLocale))

	assert.Equal(t, "de-DE", cfg.GetString(KeyDefaultLocale))
	assert.Equal(t, map[string]string{"fr-FR": "sunday", "en-NZ": "sat"}, cfg.GetStringMap(KeyFirstDayOverrides))

	settings, err := cfg.Calendar()
	require.NoError(t, err)
	assert.Equal(t, "de-DE", settings.DefaultLocale)
}

func TestSetAndGetAll(t *testing.T) {
	cfg := Empty("")
	cfg.Set("calendar.default_locale", "en-NZ")

	all := cfg.GetAll()
	all["calendar"].(map[string]interface{})["default_locale"] = "changed"

	assert.Equal(t, "en-NZ", cfg.GetString(KeyDefaultLocale))
	assert.Contains(t, cfg.String(), "keys: 1")
}

func TestCalendarSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		settings, err := Empty("").Calendar()
		require.NoError(t, err)
		assert.Equal(t, DefaultLocale, settings.DefaultLocale)
		assert.Empty(t, settings.FirstDayOverrides)
	})

	t.Run("invalid locale shape", func(t *testing.T) {
		cfg, err := LoadFromString(`[calendar]
default_locale = "en US!"
`, FormatTOML)
		require.NoError(t, err)

		_, err = cfg.Calendar()
		require.Error(t, err)
		assert.True(t, dherror.HasCode(err, dherror.CodeInvalidConfig))
	})

	t.Run("malformed locale", func(t *testing.T) {
		cfg, err := LoadFromString(`[calendar]
default_locale = "not-a-real-locale"
`, FormatTOML)
		require.NoError(t, err)

		_, err = cfg.Calendar()
		require.Error(t, err)
		assert.True(t, dherror.HasCode(err, dherror.CodeInvalidConfig))
		assert.Contains(t, validationErrors(err), "invalid locale format")
	})

	t.Run("malformed override locale", func(t *testing.T) {
		cfg, err := LoadFromString(`[calendar.first_day_overrides]
"en_GB" = "monday"
"en US!" = "monday"
`, FormatTOML)
		require.NoError(t, err)

		_, err = cfg.Calendar()
		require.Error(t, err)
		assert.True(t, dherror.HasCode(err, dherror.CodeInvalidConfig))
		assert.Contains(t, validationErrors(err), "en US!")
	})

	t.Run("underscore locale accepted", func(t *testing.T) {
		cfg, err := LoadFromString(`[calendar]
default_locale = "en_GB"
`, FormatTOML)
		require.NoError(t, err)

		settings, err := cfg.Calendar()
		require.NoError(t, err)
		assert.Equal(t, "en_GB", settings.DefaultLocale)
	})

	t.Run("overrides not a table", func(t *testing.T) {
		cfg, err := LoadFromString(`[calendar]
first_day_overrides = "monday"
`, FormatTOML)
		require.NoError(t, err)

		_, err = cfg.Calendar()
		assert.True(t, dherror.HasCode(err, dherror.CodeInvalidConfig))
	})
}

func TestLoggingSettings(t *testing.T) {
	settings, err := Empty("").Logging()
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, settings.Level)
	assert.Equal(t, log.FormatConsole, settings.Format)

	cfg, err := LoadFromString(tomlConfig, FormatTOML)
	require.NoError(t, err)
	settings, err = cfg.Logging()
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, settings.Level)
	assert.Equal(t, log.FormatJSON, settings.Format)

	cfg, err = LoadFromString("[log]\nlevel = \"loud\"\n", FormatTOML)
	require.NoError(t, err)
	_, err = cfg.Logging()
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeInvalidConfig))
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(tomlConfig, FormatTOML)
	require.NoError(t, err)

	result := cfg.Validate(ValidationRules{
		"calendar.default_locale": {Required: true, Type: "string"},
		"calendar.week_numbering": {Required: true},
		"log.level":               {OneOf: []string{"info"}},
	})

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
	assert.Error(t, result.Err())

	ok := cfg.Validate(ValidationRules{"log.format": {Type: "string", Pattern: "^json$"}})
	assert.True(t, ok.Valid)
	assert.NoError(t, ok.Err())
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:      []string{filepath.Join(dir, "missing"), dir},
		Filenames:  []string{"datecal"},
		Extensions: []string{".toml", ".yaml"},
	}

	cfg, err := Discover(opts)
	require.NoError(t, err)
	assert.Empty(t, cfg.FilePath())

	opts.Required = true
	_, err = Discover(opts)
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeMissingConfig))

	path := writeFile(t, dir, "datecal.yaml", yamlConfig)
	found, err := FindConfigFile(opts)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	cfg, err = Discover(opts)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.FilePath())
	assert.Equal(t, "ar-AE", cfg.GetString(KeyDefaultLocale))

	assert.Len(t, ListPossibleConfigFiles(opts), 4)
}

func TestDefaultDiscoveryOptions(t *testing.T) {
	opts := DefaultDiscoveryOptions()
	assert.Equal(t, "DATECAL", opts.EnvPrefix)
	assert.Contains(t, opts.Filenames, "datecal")
	assert.False(t, opts.Required)
}

// validationErrors returns the rule failures listed by ValidationResult.Err
func validationErrors(err error) string {
	var e *dherror.Error
	for errors.As(err, &e) {
		if msg, ok := e.Details()["errors"].(string); ok {
			return msg
		}
		err = e.Unwrap()
	}
	return ""
}
