// File: age_test.go
// Title: Age and Day Difference Tests
// Description: Tests for AgeInYears and DifferenceInDays.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Age and DaysBetween tests
// - 2025-10-12 v0.2.0: Argument order errors, long spans

package timex

import (
	"fmt"
	"testing"
	"time"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

func TestAgeInYears(t *testing.T) {
	testCases := []struct {
		name     string
		value    time.Time
		compare  time.Time
		expected int
	}{
		{"exact anniversary", date(2020, 6, 30), date(2022, 6, 30), 2},
		{"day before anniversary", date(2020, 6, 30), date(2022, 6, 29), 1},
		{"month before anniversary", date(1990, 6, 15), date(2022, 5, 20), 31},
		{"same day", date(2022, 6, 30), date(2022, 6, 30), 0},
		{"leap day on common year", date(2000, 2, 29), date(2001, 2, 28), 0},
		{"leap day next march", date(2000, 2, 29), date(2001, 3, 1), 1},
		{"full range", MinDate(), MaxDate(), 9998},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AgeInYears(tc.value, tc.compare)
			if err != nil {
				t.Fatalf("AgeInYears unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("AgeInYears(%v, %v) = %d, want %d", tc.value, tc.compare, got, tc.expected)
			}
		})
	}
}

func TestAgeInYearsInvalidOrder(t *testing.T) {
	_, err := AgeInYears(date(2022, 6, 30), date(2020, 6, 30))
	if err == nil {
		t.Fatal("AgeInYears expected error, got nil")
	}

	if !IsInvalidOrder(err) {
		t.Errorf("IsInvalidOrder(%v) = false", err)
	}
	if dherror.GetCode(err) != dherror.CodeInvalidOrder {
		t.Errorf("code = %v, want %v", dherror.GetCode(err), dherror.CodeInvalidOrder)
	}

	wrapped := fmt.Errorf("computing age: %w", err)
	if !IsInvalidOrder(wrapped) {
		t.Error("IsInvalidOrder does not see through wrapping")
	}

	// Same day, later time of day is still after
	_, err = AgeInYears(time.Date(2022, 6, 30, 12, 0, 0, 0, time.UTC), date(2022, 6, 30))
	if !IsInvalidOrder(err) {
		t.Errorf("AgeInYears with later time of day: err = %v", err)
	}

	if IsInvalidOrder(nil) {
		t.Error("IsInvalidOrder(nil) = true")
	}
}

func TestDifferenceInDays(t *testing.T) {
	testCases := []struct {
		name     string
		value    time.Time
		compare  time.Time
		expected int
	}{
		{"same instant", date(2022, 1, 1), date(2022, 1, 1), 0},
		{"one month", date(2022, 1, 1), date(2022, 2, 1), 31},
		{"backwards", date(2022, 2, 1), date(2022, 1, 1), -31},
		{"partial day truncated", date(2022, 1, 1), time.Date(2022, 1, 2, 23, 0, 0, 0, time.UTC), 1},
		{"partial day negative", time.Date(2022, 1, 2, 23, 0, 0, 0, time.UTC), date(2022, 1, 1), -1},
		{"nanosecond short", date(2022, 1, 1), time.Date(2022, 1, 1, 23, 59, 59, 999999999, time.UTC), 0},
		{"one nanosecond short of two days", time.Date(2022, 1, 1, 0, 0, 0, 1, time.UTC), date(2022, 1, 3), 1},
		{"leap year", date(2020, 1, 1), date(2021, 1, 1), 366},
		{"full range", MinDate(), MaxDate(), 3652058},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DifferenceInDays(tc.value, tc.compare); got != tc.expected {
				t.Errorf("DifferenceInDays(%v, %v) = %d, want %d", tc.value, tc.compare, got, tc.expected)
			}
		})
	}
}

func TestDifferenceInDaysIgnoresZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	from := time.Date(2022, 1, 1, 0, 0, 0, 0, tokyo)
	to := time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)

	if got := DifferenceInDays(from, to); got != 1 {
		t.Errorf("DifferenceInDays across zones = %d, want 1", got)
	}
}
