package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StuartShepherd/datetime-helper/foundation/utils/timex"
)

var daysCmd = &cobra.Command{
	Use:     "days <from> <to>",
	Short:   "Whole days between two values",
	Example: "  datecal days 2022-01-01 2022-02-01",
	Args:    cobra.ExactArgs(2),
	RunE:    runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, args []string) error {
	dates, err := parseDateTimes(args)
	if err != nil {
		return err
	}

	printField(cmd.OutOrStdout(), "Days", timex.DifferenceInDays(dates[0], dates[1]))
	return nil
}
