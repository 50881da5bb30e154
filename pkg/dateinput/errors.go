package dateinput

import (
	"errors"
	"strings"
)

// ParseErrors records which boxes of a date input were missing or invalid.
// Each box is either missing, invalid, or fine; never both.
type ParseErrors uint8

const (
	None ParseErrors = 0

	MissingDay ParseErrors = 1 << (iota - 1)
	MissingMonth
	MissingYear
	InvalidDay
	InvalidMonth
	InvalidYear
)

const (
	missingMask = MissingDay | MissingMonth | MissingYear
	invalidMask = InvalidDay | InvalidMonth | InvalidYear
)

var (
	// ErrUnsupportedItemTypes is returned when a converter is asked to handle
	// an item combination it was not built for.
	ErrUnsupportedItemTypes = errors.New("dateinput: unsupported item types")
	// ErrDuplicateConverter is returned when a model type already has a
	// converter registered.
	ErrDuplicateConverter = errors.New("dateinput: converter already registered")
)

// Has reports whether every flag in other is set.
func (e ParseErrors) Has(other ParseErrors) bool {
	return other != 0 && e&other == other
}

// Any reports whether at least one flag in other is set.
func (e ParseErrors) Any(other ParseErrors) bool {
	return e&other != 0
}

// Items returns the boxes that have a problem.
func (e ParseErrors) Items() ItemTypes {
	var out ItemTypes
	if e.Any(MissingDay | InvalidDay) {
		out |= Day
	}
	if e.Any(MissingMonth | InvalidMonth) {
		out |= Month
	}
	if e.Any(MissingYear | InvalidYear) {
		out |= Year
	}
	return out
}

func (e ParseErrors) String() string {
	if e == None {
		return "none"
	}
	names := []struct {
		flag ParseErrors
		name string
	}{
		{MissingDay, "missing-day"},
		{MissingMonth, "missing-month"},
		{MissingYear, "missing-year"},
		{InvalidDay, "invalid-day"},
		{InvalidMonth, "invalid-month"},
		{InvalidYear, "invalid-year"},
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if e.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ErrorMessage composes the message shown against a date field. When only
// one or two boxes are missing the message names them, otherwise the date is
// reported as not real.
func ErrorMessage(errs ParseErrors, displayName string) string {
	if errs == None {
		return ""
	}

	if errs&invalidMask == 0 && errs&missingMask != missingMask {
		missing := make([]string, 0, 2)
		if errs.Has(MissingDay) {
			missing = append(missing, "day")
		}
		if errs.Has(MissingMonth) {
			missing = append(missing, "month")
		}
		if errs.Has(MissingYear) {
			missing = append(missing, "year")
		}
		return displayName + " must include a " + strings.Join(missing, " and ")
	}

	return displayName + " must be a real date"
}
