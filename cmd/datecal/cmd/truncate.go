package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StuartShepherd/datetime-helper/foundation/utils/timex"
)

var truncateTo string

var truncateCmd = &cobra.Command{
	Use:     "truncate <datetime>",
	Short:   "Drop time components smaller than a unit",
	Example: "  datecal truncate 2022-01-01T17:30:30.250Z --to second",
	Args:    cobra.ExactArgs(1),
	RunE:    runTruncate,
}

func init() {
	truncateCmd.Flags().StringVar(&truncateTo, "to", "second", "unit: millisecond, second, minute, hour, day")
	rootCmd.AddCommand(truncateCmd)
}

func runTruncate(cmd *cobra.Command, args []string) error {
	t, err := parseDateTime(args[0])
	if err != nil {
		return err
	}

	g, err := timex.ParseGranularity(truncateTo)
	if err != nil {
		return err
	}

	printField(cmd.OutOrStdout(), "Truncated", formatDateTime(timex.Truncate(t, g)))
	return nil
}
