package dateinput

import (
	"fmt"
	"strings"
)

// ItemTypes is the set of date input boxes a field collects.
type ItemTypes uint8

const (
	Day ItemTypes = 1 << iota
	Month
	Year
)

// Supported combinations.
const (
	DayMonthYear = Day | Month | Year
	DayMonth     = Day | Month
	MonthYear    = Month | Year
)

// Has reports whether every flag in other is set.
func (t ItemTypes) Has(other ItemTypes) bool {
	return other != 0 && t&other == other
}

// IsZero reports whether no item type was declared.
func (t ItemTypes) IsZero() bool {
	return t == 0
}

// Supported reports whether t is one of DayMonthYear, DayMonth or MonthYear.
func (t ItemTypes) Supported() bool {
	switch t {
	case DayMonthYear, DayMonth, MonthYear:
		return true
	default:
		return false
	}
}

func (t ItemTypes) String() string {
	if t == 0 {
		return ""
	}
	parts := make([]string, 0, 3)
	if t.Has(Day) {
		parts = append(parts, "day")
	}
	if t.Has(Month) {
		parts = append(parts, "month")
	}
	if t.Has(Year) {
		parts = append(parts, "year")
	}
	if rest := t &^ DayMonthYear; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseItemTypes reads a list of item names separated by "|", "," or "+"
// (for example "day|month|year" or "month,year"). Empty input yields zero.
func ParseItemTypes(raw string) (ItemTypes, error) {
	var out ItemTypes
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '|' || r == ',' || r == '+' || r == ' '
	})
	for _, field := range fields {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "day":
			out |= Day
		case "month":
			out |= Month
		case "year":
			out |= Year
		default:
			return 0, fmt.Errorf("dateinput: unknown item type %q", field)
		}
	}
	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t ItemTypes) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ItemTypes) UnmarshalText(text []byte) error {
	parsed, err := ParseItemTypes(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
