package cmd

import (
	"github.com/spf13/cobra"
)

var weeksCmd = &cobra.Command{
	Use:   "weeks <from> <to>",
	Short: "Count whole weeks from the start of a week to a date",
	Long: `Counts the whole weeks between the start of the week containing <from>
and <to>. The week start follows the --locale flag.`,
	Example: "  datecal weeks 2022-01-01 2022-02-01 --locale ar-AE",
	Args:    cobra.ExactArgs(2),
	RunE:    runWeeks,
}

func init() {
	rootCmd.AddCommand(weeksCmd)
}

func runWeeks(cmd *cobra.Command, args []string) error {
	dates, err := parseDateTimes(args)
	if err != nil {
		return err
	}

	printField(cmd.OutOrStdout(), "Weeks", calendar.NumberOfWeeks(dates[0], dates[1], currentLocale()))
	return nil
}
