package cmd

import (
	"strconv"
	"strings"
	"time"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

// Accepted input layouts, tried in order. Layouts without a zone are read
// in the local zone.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

const outputLayout = time.RFC3339Nano

func parseDateTime(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for i, layout := range inputLayouts {
		var t time.Time
		var err error
		if i == 0 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, dherror.New("unrecognised date").
		WithCode(dherror.CodeInvalidFormat).
		WithOperation("datecal.parseDateTime").
		WithDetail("value", value).
		WithDetail("expected", "2006-01-02, 2006-01-02 15:04:05 or RFC 3339")
}

func parseDateTimes(values []string) ([]time.Time, error) {
	result := make([]time.Time, len(values))
	for i, v := range values {
		t, err := parseDateTime(v)
		if err != nil {
			return nil, err
		}
		result[i] = t
	}
	return result, nil
}

func parseInts(names []string, values []string) ([]int, error) {
	result := make([]int, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, dherror.Wrap(err, "not a number").
				WithCode(dherror.CodeInvalidInput).
				WithOperation("datecal.parseInts").
				WithDetail("field", names[i]).
				WithDetail("value", v)
		}
		result[i] = n
	}
	return result, nil
}

func formatDateTime(t time.Time) string {
	return t.Format(outputLayout)
}

// currentLocale returns the --locale flag or the calendar default
func currentLocale() string {
	if strings.TrimSpace(locale) != "" {
		return locale
	}
	return calendar.DefaultLocale()
}
