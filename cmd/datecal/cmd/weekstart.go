package cmd

import (
	"github.com/spf13/cobra"
)

var showWeekEnd bool

var weekstartCmd = &cobra.Command{
	Use:     "weekstart <date>",
	Short:   "Show the start of the week containing a date",
	Example: "  datecal weekstart 2022-01-01 --locale en-GB --end",
	Args:    cobra.ExactArgs(1),
	RunE:    runWeekStart,
}

func init() {
	weekstartCmd.Flags().BoolVar(&showWeekEnd, "end", false, "also show the last instant of the week")
	rootCmd.AddCommand(weekstartCmd)
}

func runWeekStart(cmd *cobra.Command, args []string) error {
	t, err := parseDateTime(args[0])
	if err != nil {
		return err
	}

	l := currentLocale()
	out := cmd.OutOrStdout()
	printField(out, "Week start", formatDateTime(calendar.WeekStart(t, l)))
	if showWeekEnd {
		printField(out, "Week end", formatDateTime(calendar.WeekEnd(t, l)))
	}
	return nil
}
