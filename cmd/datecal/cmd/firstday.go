package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StuartShepherd/datetime-helper/foundation/core/i18n"
)

var firstdayCmd = &cobra.Command{
	Use:   "firstday [locale...]",
	Short: "Show the first day of the week",
	Long: `Shows the day a calendar week starts on for each locale.

Without arguments the --locale flag or the configured default locale is used.
Unknown locales fall back to the default locale.`,
	Example: "  datecal firstday en-US en-GB ar-AE",
	RunE:    runFirstDay,
}

func init() {
	rootCmd.AddCommand(firstdayCmd)
}

func runFirstDay(cmd *cobra.Command, args []string) error {
	locales := args
	if len(locales) == 0 {
		locales = []string{currentLocale()}
	}

	out := cmd.OutOrStdout()
	for _, l := range locales {
		printField(out, localeLabel(l), calendar.FirstDayOfWeek(l))
	}
	return nil
}

// localeLabel returns "en-GB (British English)" for known locales
func localeLabel(l string) string {
	if name := i18n.DisplayName(l); name != l {
		return l + " (" + name + ")"
	}
	return l
}
