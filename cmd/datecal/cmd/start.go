package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
	"github.com/StuartShepherd/datetime-helper/foundation/utils/timex"
)

var period string

var startCmd = &cobra.Command{
	Use:     "start <datetime>",
	Short:   "Show the start of the period containing a value",
	Example: "  datecal start \"2022-01-01 17:30:30\" --period hour",
	Args:    cobra.ExactArgs(1),
	RunE:    runStart,
}

func init() {
	startCmd.Flags().StringVarP(&period, "period", "p", "day", "period: minute, hour, day, week, month, year")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	t, err := parseDateTime(args[0])
	if err != nil {
		return err
	}

	start, err := periodStart(t, period)
	if err != nil {
		return err
	}

	printField(cmd.OutOrStdout(), "Start", formatDateTime(start))
	return nil
}

func periodStart(t time.Time, p string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "minute":
		return timex.MinuteStart(t), nil
	case "hour":
		return timex.HourStart(t), nil
	case "day":
		return timex.DayStart(t), nil
	case "week":
		return calendar.WeekStart(t, currentLocale()), nil
	case "month":
		return timex.MonthStart(t), nil
	case "year":
		return timex.YearStart(t), nil
	}

	return time.Time{}, dherror.New("unknown period").
		WithCode(dherror.CodeInvalidInput).
		WithOperation("datecal.periodStart").
		WithDetail("period", p)
}
