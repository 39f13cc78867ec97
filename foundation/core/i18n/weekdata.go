// File: weekdata.go
// Title: CLDR Week Data
// Description: First-day-of-week table by region, taken from the CLDR
//              supplemental weekData. Regions not listed start the week on
//              Monday, the CLDR world default.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-12
// Modified: 2025-10-12
//
// Change History:
// - 2025-10-12 v0.1.0: Initial table

package i18n

import (
	"strings"
	"time"
)

// worldFirstDay is the CLDR "001" default
const worldFirstDay = time.Monday

var firstDayByRegion = buildFirstDayTable(map[time.Weekday]string{
	time.Friday:   "MV",
	time.Saturday: "AE AF BH DJ DZ EG IQ IR JO KW LY OM QA SD SY",
	time.Sunday: "AG AS BD BR BS BT BW BZ CA CN CO DM DO ET GT GU HK HN ID IL IN JM JP KE " +
		"KH KR LA MH MM MO MT MX MZ NI NP PA PE PH PK PR PT PY SA SG SV TH TT TW UM " +
		"US VE VI WS YE ZA ZW",
})

func buildFirstDayTable(lists map[time.Weekday]string) map[string]time.Weekday {
	table := make(map[string]time.Weekday)
	for day, regions := range lists {
		for _, region := range strings.Fields(regions) {
			table[region] = day
		}
	}
	return table
}

// FirstDayForRegion returns the first day of the week for an ISO 3166 region code
func FirstDayForRegion(region string) time.Weekday {
	if day, ok := firstDayByRegion[strings.ToUpper(region)]; ok {
		return day
	}
	return worldFirstDay
}

// fwKeys maps Unicode "fw" extension values to weekdays
var fwKeys = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}
