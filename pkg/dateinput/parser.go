package dateinput

import (
	"strconv"
	"strings"
	"time"
)

// ItemValues carries the parsed components of a date input. A zero field
// means the component is absent; every valid component is at least 1.
type ItemValues struct {
	Day   int
	Month int
	Year  int
}

// leapYear stands in for a missing year so 29 February is accepted on partial
// dates.
const leapYear = 2000

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// Parse validates the raw day, month and year strings for the boxes selected
// by itemTypes. Month is always parsed. Values are only returned when the
// result is None.
func Parse(itemTypes ItemTypes, day, month, year string, acceptMonthNames bool) (ParseErrors, ItemValues) {
	var (
		errs   ParseErrors
		values ItemValues
	)

	parsedYear, yearOK := 0, false
	if itemTypes.Has(Year) {
		switch {
		case year == "":
			errs |= MissingYear
		default:
			if v, ok := parseYear(year); ok {
				parsedYear, yearOK = v, true
			} else {
				errs |= InvalidYear
			}
		}
	}

	parsedMonth, monthOK := 0, false
	switch {
	case month == "":
		errs |= MissingMonth
	default:
		if v, ok := parseMonth(month, acceptMonthNames); ok {
			parsedMonth, monthOK = v, true
		} else {
			errs |= InvalidMonth
		}
	}

	parsedDay := 0
	if itemTypes.Has(Day) {
		switch {
		case day == "":
			errs |= MissingDay
		default:
			y := leapYear
			if yearOK {
				y = parsedYear
			}
			if v, ok := parseDay(day, parsedMonth, monthOK, y); ok {
				parsedDay = v
			} else {
				errs |= InvalidDay
			}
		}
	}

	if errs != None {
		return errs, ItemValues{}
	}

	values.Month = parsedMonth
	if itemTypes.Has(Day) {
		values.Day = parsedDay
	}
	if itemTypes.Has(Year) {
		values.Year = parsedYear
	}
	return None, values
}

// DaysIn returns the number of days in month for year.
func DaysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func parseYear(raw string) (int, bool) {
	v, ok := parseInt(raw)
	if !ok || v < 1 || v > 9999 || len(raw) != 4 {
		return 0, false
	}
	return v, true
}

func parseMonth(raw string, acceptNames bool) (int, bool) {
	v, ok := parseInt(raw)
	if !ok && acceptNames {
		v, ok = monthNames[strings.ToLower(strings.TrimSpace(raw))]
	}
	if !ok || v < 1 || v > 12 {
		return 0, false
	}
	return v, true
}

func parseDay(raw string, month int, monthOK bool, year int) (int, bool) {
	v, ok := parseInt(raw)
	if !ok || v < 1 || v > 31 {
		return 0, false
	}
	if monthOK && v > DaysIn(month, year) {
		return 0, false
	}
	return v, true
}

// parseInt tolerates surrounding whitespace and a leading sign. A value made
// only of whitespace does not parse.
func parseInt(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return v, true
}
