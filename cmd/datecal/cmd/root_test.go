package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
	"github.com/StuartShepherd/datetime-helper/foundation/utils/timex"
	"github.com/StuartShepherd/datetime-helper/pkg/core/version"
)

const emptyConfig = "[log]\nlevel = \"error\"\n"

// execute runs datecal with a config file holding content and returns stdout.
// The locale environment is cleared first.
func execute(t *testing.T, content string, args ...string) (string, error) {
	t.Helper()

	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG", "DATECAL_CALENDAR_DEFAULT_LOCALE"} {
		t.Setenv(key, "")
	}
	return runCommand(t, content, args...)
}

// runCommand is execute without touching the environment
func runCommand(t *testing.T, content string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "datecal.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfgFile, locale, logLevel, logFormat = "", "", "", ""
	showWeekEnd, period, truncateTo = false, "day", "second"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", path}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestFirstDayCommand(t *testing.T) {
	out, err := execute(t, emptyConfig, "firstday", "en-US", "en-GB", "ar-AE", "not-a-real-locale")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[0]), "Sunday")
	assert.Contains(t, string(lines[1]), "Monday")
	assert.Contains(t, string(lines[2]), "Saturday")
	assert.Contains(t, string(lines[3]), "not-a-real-locale")
	assert.Contains(t, string(lines[3]), "Sunday")
}

func TestFirstDayUsesConfiguredDefault(t *testing.T) {
	out, err := execute(t, "[calendar]\ndefault_locale = \"en-GB\"\n", "firstday")
	require.NoError(t, err)
	assert.Contains(t, out, "en-GB")
	assert.Contains(t, out, "Monday")

	out, err = execute(t, "[calendar]\ndefault_locale = \"en-GB\"\n", "firstday", "--locale", "ar-EG")
	require.NoError(t, err)
	assert.Contains(t, out, "Saturday")
}

func TestFirstDayOverrides(t *testing.T) {
	content := "[calendar.first_day_overrides]\n\"en-US\" = \"mon\"\n"
	out, err := execute(t, content, "firstday", "en-US")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday")

	_, err = execute(t, "[calendar.first_day_overrides]\n\"en-US\" = \"funday\"\n", "firstday")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeInvalidConfig))
}

func TestWeekStartCommand(t *testing.T) {
	out, err := execute(t, emptyConfig, "weekstart", "2022-01-01", "--locale", "en-GB", "--end")
	require.NoError(t, err)
	assert.Contains(t, out, "2021-12-27T00:00:00")
	assert.Contains(t, out, "2022-01-02T23:59:59.999999999")

	out, err = execute(t, emptyConfig, "weekstart", "2022-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "2021-12-26T00:00:00")
	assert.NotContains(t, out, "Week end")
}

func TestWeeksCommand(t *testing.T) {
	out, err := execute(t, emptyConfig, "weeks", "2022-01-01", "2022-02-01", "--locale", "ar-AE")
	require.NoError(t, err)
	assert.Contains(t, out, " 4\n")

	out, err = execute(t, emptyConfig, "weeks", "2022-01-01", "2022-02-01")
	require.NoError(t, err)
	assert.Contains(t, out, " 5\n")
}

func TestStartCommand(t *testing.T) {
	testCases := []struct {
		period   string
		expected string
	}{
		{"minute", "2022-01-01T17:30:00"},
		{"hour", "2022-01-01T17:00:00"},
		{"day", "2022-01-01T00:00:00"},
		{"week", "2021-12-26T00:00:00"},
		{"month", "2022-01-01T00:00:00"},
		{"year", "2022-01-01T00:00:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.period, func(t *testing.T) {
			out, err := execute(t, emptyConfig, "start", "2022-01-01 17:30:30", "--period", tc.period)
			require.NoError(t, err)
			assert.Contains(t, out, tc.expected)
		})
	}

	_, err := execute(t, emptyConfig, "start", "2022-01-01", "--period", "fortnight")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeInvalidInput))
}

func TestTruncateCommand(t *testing.T) {
	out, err := execute(t, emptyConfig, "truncate", "2022-01-01T17:30:30.250Z")
	require.NoError(t, err)
	assert.Contains(t, out, "2022-01-01T17:30:30Z")

	out, err = execute(t, emptyConfig, "truncate", "2022-01-01T17:30:30.250Z", "--to", "hour")
	require.NoError(t, err)
	assert.Contains(t, out, "2022-01-01T17:00:00Z")

	_, err = execute(t, emptyConfig, "truncate", "2022-01-01T17:30:30Z", "--to", "week")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeInvalidFormat))
}

func TestValidateCommands(t *testing.T) {
	out, err := execute(t, emptyConfig, "validate", "date", "2020", "2", "29")
	require.NoError(t, err)
	assert.Contains(t, out, "2020-02-29")
	assert.NotContains(t, out, "invalid")

	out, err = execute(t, emptyConfig, "validate", "date", "2022", "2", "29")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeValidationFailed))
	assert.Contains(t, out, "invalid")

	_, err = execute(t, emptyConfig, "validate", "time", "0", "0")
	require.NoError(t, err)

	_, err = execute(t, emptyConfig, "validate", "time", "24", "30", "30")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeValidationFailed))

	_, err = execute(t, emptyConfig, "validate", "date", "year", "1", "1")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeInvalidInput))
}

func TestAgeCommand(t *testing.T) {
	out, err := execute(t, emptyConfig, "age", "2020-06-30", "2022-06-30")
	require.NoError(t, err)
	assert.Contains(t, out, " 2\n")

	_, err = execute(t, emptyConfig, "age", "2022-06-30", "2020-06-30")
	require.Error(t, err)
	assert.True(t, timex.IsInvalidOrder(err))

	_, err = execute(t, emptyConfig, "age", "2000-01-01")
	require.NoError(t, err)
}

func TestDaysCommand(t *testing.T) {
	out, err := execute(t, emptyConfig, "days", "2022-01-01", "2022-02-01")
	require.NoError(t, err)
	assert.Contains(t, out, " 31\n")

	_, err = execute(t, emptyConfig, "days", "yesterday", "2022-02-01")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeInvalidFormat))
}

func TestFirstDayUsesEnvironmentLocale(t *testing.T) {
	out, err := execute(t, emptyConfig, "firstday")
	require.NoError(t, err)
	assert.Contains(t, out, "en-US")
	assert.Contains(t, out, "Sunday")

	t.Setenv("LANG", "ar_AE.UTF-8")
	out, err = runCommand(t, emptyConfig, "firstday")
	require.NoError(t, err)
	assert.Contains(t, out, "ar-AE")
	assert.Contains(t, out, "Saturday")

	// A configured default wins over the environment
	out, err = runCommand(t, "[calendar]\ndefault_locale = \"en-GB\"\n", "firstday")
	require.NoError(t, err)
	assert.Contains(t, out, "en-GB")
	assert.Contains(t, out, "Monday")

	// Unknown to the provider: the built-in default stays
	t.Setenv("LANG", "C.UTF-8")
	out, err = runCommand(t, emptyConfig, "firstday")
	require.NoError(t, err)
	assert.Contains(t, out, "en-US")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, emptyConfig, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "v"+version.Version)
}

func TestSetupErrors(t *testing.T) {
	_, err := execute(t, emptyConfig, "--log-level", "loud", "firstday")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeInvalidInput))

	_, err = execute(t, "[calendar]\ndefault_locale = \"xx-invalid-locale-tag\"\n", "firstday")
	require.Error(t, err)
	assert.True(t, dherror.HasCode(err, dherror.CodeInvalidConfig))
}

func TestParseDateTime(t *testing.T) {
	testCases := []struct {
		input string
		year  int
		hour  int
		nanos int
	}{
		{"2022-01-01T17:30:30Z", 2022, 17, 0},
		{"2022-01-01T17:30:30.5+02:00", 2022, 17, 500000000},
		{"2022-01-01T17:30:30", 2022, 17, 0},
		{"2022-01-01 08:30:30.25", 2022, 8, 250000000},
		{" 0001-01-01 ", 1, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseDateTime(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.year, got.Year())
			assert.Equal(t, tc.hour, got.Hour())
			assert.Equal(t, tc.nanos, got.Nanosecond())
		})
	}

	_, err := parseDateTime("01/02/2022")
	assert.Error(t, err)
}

func TestErrorDetails(t *testing.T) {
	err := dherror.New("boom").WithDetail("b", 2).WithDetail("a", "x")
	assert.Equal(t, "a=x b=2", errorDetails(err))
	assert.Empty(t, errorDetails(assert.AnError))
}

func TestFormatDateTime(t *testing.T) {
	d := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2022-01-01T00:00:00Z", formatDateTime(d))
}
