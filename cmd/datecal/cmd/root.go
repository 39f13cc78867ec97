package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/StuartShepherd/datetime-helper/foundation/core/config"
	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
	"github.com/StuartShepherd/datetime-helper/foundation/core/i18n"
	"github.com/StuartShepherd/datetime-helper/foundation/core/log"
	"github.com/StuartShepherd/datetime-helper/foundation/utils/timex"
)

var (
	cfgFile   string
	locale    string
	logLevel  string
	logFormat string

	calendar *timex.Calendar
	logger   *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "datecal",
	Short: "Calendar date utilities",
	Long: `datecal answers calendar questions from the command line:
the first day of the week for a locale, week starts and week counts,
period starts, truncation, date validation and ages.

Dates are read as RFC 3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"
or "2006-01-02". Values without a zone are taken in the local zone.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. A failure is logged and printed to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger != nil {
			logger.LogError(err)
		}
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: datecal.toml in ., ./config or the user config dir)")
	rootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", "", "locale for week calculations (default: calendar.default_locale, then LC_ALL, LC_TIME or LANG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, text, json, logfmt")
}

// setup loads the configuration and builds the logger and calendar
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg)
	if err != nil {
		return err
	}
	if path := cfg.FilePath(); path != "" {
		logger.Debug("configuration loaded", log.Fields{"path": path})
	}

	calendar, err = newCalendar(cfg, logger)
	return err
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.DefaultDiscoveryOptions().EnvPrefix,
		})
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

func newLogger(cfg *config.Config) (*log.Logger, error) {
	settings, err := cfg.Logging()
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		if settings.Level, err = log.ParseLevel(logLevel); err != nil {
			return nil, flagError("log-level", logLevel, err)
		}
	}
	if logFormat != "" {
		if settings.Format, err = log.ParseFormat(logFormat); err != nil {
			return nil, flagError("log-format", logFormat, err)
		}
	}

	return log.NewWithConfig(log.Config{
		Level:  settings.Level,
		Format: settings.Format,
		Output: os.Stderr,
		Name:   "datecal",
	}), nil
}

func newCalendar(cfg *config.Config, logger *log.Logger) (*timex.Calendar, error) {
	settings, err := cfg.Calendar()
	if err != nil {
		return nil, err
	}

	var provider i18n.Provider = i18n.NewCLDRProvider()
	if len(settings.FirstDayOverrides) > 0 {
		overrides := make(map[string]time.Weekday, len(settings.FirstDayOverrides))
		for loc, name := range settings.FirstDayOverrides {
			day, err := timex.ParseWeekday(name)
			if err != nil {
				return nil, dherror.Wrap(err, "invalid first day override").
					WithCode(dherror.CodeInvalidConfig).
					WithOperation("datecal.newCalendar").
					WithDetail("locale", loc)
			}
			overrides[loc] = time.Weekday(day)
		}

		if provider, err = i18n.NewOverrideProvider(provider, overrides); err != nil {
			return nil, err
		}
		logger.Debug("first day overrides active", log.Fields{"count": len(overrides)})
	}

	defaultLocale := settings.DefaultLocale
	if !cfg.Has(config.KeyDefaultLocale) {
		if env, ok := i18n.EnvironmentLocale(nil, provider); ok {
			defaultLocale = env
			logger.Debug("default locale from environment", log.Fields{"locale": env})
		}
	}

	return timex.NewCalendar(timex.CalendarOptions{
		DefaultLocale: defaultLocale,
		Provider:      provider,
		Logger:        logger,
	})
}

func flagError(flag, value string, err error) error {
	return dherror.Wrap(err, fmt.Sprintf("invalid --%s", flag)).
		WithCode(dherror.CodeInvalidInput).
		WithOperation("datecal.setup").
		WithDetail("value", value)
}

func printError(err error) {
	msg := err.Error()
	if details := errorDetails(err); details != "" {
		msg += " (" + details + ")"
	}
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), msg)
}

// errorDetails renders the details of a structured error as key=value pairs
func errorDetails(err error) string {
	var dhErr *dherror.Error
	if !errors.As(err, &dhErr) {
		return ""
	}

	details := dhErr.Details()
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, details[k]))
	}
	return strings.Join(parts, " ")
}
