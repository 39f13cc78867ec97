package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
	"github.com/StuartShepherd/datetime-helper/foundation/utils/timex"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check calendar fields",
	Long: `Checks whether calendar fields form a valid date or time of day.
The exit status is non-zero when they do not.`,
}

var validateDateCmd = &cobra.Command{
	Use:     "date <year> <month> <day>",
	Short:   "Check a date",
	Example: "  datecal validate date 2020 2 29",
	Args:    cobra.ExactArgs(3),
	RunE:    runValidateDate,
}

var validateTimeCmd = &cobra.Command{
	Use:     "time <hour> <minute> [second]",
	Short:   "Check a time of day",
	Example: "  datecal validate time 23 59 59",
	Args:    cobra.RangeArgs(2, 3),
	RunE:    runValidateTime,
}

func init() {
	validateCmd.AddCommand(validateDateCmd)
	validateCmd.AddCommand(validateTimeCmd)
	rootCmd.AddCommand(validateCmd)
}

func runValidateDate(cmd *cobra.Command, args []string) error {
	f, err := parseInts([]string{"year", "month", "day"}, args)
	if err != nil {
		return err
	}

	valid := timex.IsValidDate(f[0], f[1], f[2])
	printField(cmd.OutOrStdout(), fmt.Sprintf("%04d-%02d-%02d", f[0], f[1], f[2]), renderValidity(valid))
	if !valid {
		return invalidFields("date", args)
	}
	return nil
}

func runValidateTime(cmd *cobra.Command, args []string) error {
	f, err := parseInts([]string{"hour", "minute", "second"}, args)
	if err != nil {
		return err
	}

	valid := timex.IsValidTime(f[0], f[1], f[2:]...)
	label := fmt.Sprintf("%02d:%02d", f[0], f[1])
	if len(f) == 3 {
		label += fmt.Sprintf(":%02d", f[2])
	}
	printField(cmd.OutOrStdout(), label, renderValidity(valid))
	if !valid {
		return invalidFields("time", args)
	}
	return nil
}

func invalidFields(kind string, fields []string) error {
	return dherror.New(fmt.Sprintf("invalid %s", kind)).
		WithCode(dherror.CodeValidationFailed).
		WithOperation("datecal.validate").
		WithDetail("fields", fields)
}
