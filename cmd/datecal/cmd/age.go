package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/StuartShepherd/datetime-helper/foundation/utils/timex"
)

var ageCmd = &cobra.Command{
	Use:   "age <value> [compare]",
	Short: "Completed years from one date to another",
	Long: `Counts the completed years from <value> to [compare] (default: now).
Fails when <value> is after [compare].`,
	Example: "  datecal age 1990-06-15 2022-06-14",
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runAge,
}

func init() {
	rootCmd.AddCommand(ageCmd)
}

func runAge(cmd *cobra.Command, args []string) error {
	dates, err := parseDateTimes(args)
	if err != nil {
		return err
	}

	compare := time.Now().In(dates[0].Location())
	if len(dates) == 2 {
		compare = dates[1]
	}

	age, err := timex.AgeInYears(dates[0], compare)
	if err != nil {
		return err
	}

	printField(cmd.OutOrStdout(), "Age", age)
	return nil
}
