package dateinput

import (
	"fmt"
	"reflect"
	"time"
)

// ToModelContext describes a conversion from parsed values to a model.
type ToModelContext struct {
	ModelType reflect.Type
	ItemTypes ItemTypes
	Values    ItemValues
}

// FromModelContext describes a conversion from a model back to item values.
type FromModelContext struct {
	ModelType reflect.Type
	ItemTypes ItemTypes
	Model     any
}

// Converter maps parsed date components to and from one model type.
//
// ItemTypes reports the single combination the converter supports, or false
// when it accepts any supported combination and switches on the context at
// call time. FromModel returns ok == false when the model carries no value, in
// which case callers leave the boxes blank.
type Converter interface {
	ItemTypes() (ItemTypes, bool)
	ToModel(ctx ToModelContext) (any, error)
	FromModel(ctx FromModelContext) (ItemValues, bool, error)
}

// Date is a calendar date without a time or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in loc (UTC when loc is nil).
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Pair holds two date components. For DayMonth fields First is the day and
// Second the month; for MonthYear fields First is the month and Second the
// year.
type Pair struct {
	First  int
	Second int
}

// IsZero reports whether p is the zero Pair.
func (p Pair) IsZero() bool {
	return p == Pair{}
}

func checkItemTypes(c Converter, got ItemTypes) error {
	if want, fixed := c.ItemTypes(); fixed && want != got {
		return fmt.Errorf("%w: converter handles %s, got %s", ErrUnsupportedItemTypes, want, got)
	}
	return nil
}

// DateConverter converts full dates to Date.
type DateConverter struct{}

var _ Converter = DateConverter{}

func (DateConverter) ItemTypes() (ItemTypes, bool) { return DayMonthYear, true }

func (c DateConverter) ToModel(ctx ToModelContext) (any, error) {
	if err := checkItemTypes(c, ctx.ItemTypes); err != nil {
		return nil, err
	}
	return Date{Year: ctx.Values.Year, Month: time.Month(ctx.Values.Month), Day: ctx.Values.Day}, nil
}

func (c DateConverter) FromModel(ctx FromModelContext) (ItemValues, bool, error) {
	if err := checkItemTypes(c, ctx.ItemTypes); err != nil {
		return ItemValues{}, false, err
	}
	d, ok := ctx.Model.(Date)
	if !ok {
		return ItemValues{}, false, fmt.Errorf("dateinput: date converter cannot decompose %T", ctx.Model)
	}
	if d.IsZero() {
		return ItemValues{}, false, nil
	}
	return ItemValues{Day: d.Day, Month: int(d.Month), Year: d.Year}, true, nil
}

// TimeConverter converts full dates to time.Time at midnight UTC.
type TimeConverter struct{}

var _ Converter = TimeConverter{}

func (TimeConverter) ItemTypes() (ItemTypes, bool) { return DayMonthYear, true }

func (c TimeConverter) ToModel(ctx ToModelContext) (any, error) {
	if err := checkItemTypes(c, ctx.ItemTypes); err != nil {
		return nil, err
	}
	return time.Date(ctx.Values.Year, time.Month(ctx.Values.Month), ctx.Values.Day, 0, 0, 0, 0, time.UTC), nil
}

func (c TimeConverter) FromModel(ctx FromModelContext) (ItemValues, bool, error) {
	if err := checkItemTypes(c, ctx.ItemTypes); err != nil {
		return ItemValues{}, false, err
	}
	t, ok := ctx.Model.(time.Time)
	if !ok {
		return ItemValues{}, false, fmt.Errorf("dateinput: time converter cannot decompose %T", ctx.Model)
	}
	if t.IsZero() {
		return ItemValues{}, false, nil
	}
	y, m, d := t.Date()
	return ItemValues{Day: d, Month: int(m), Year: y}, true, nil
}

// PairConverter converts partial dates to Pair. It supports DayMonth and
// MonthYear.
type PairConverter struct{}

var _ Converter = PairConverter{}

func (PairConverter) ItemTypes() (ItemTypes, bool) { return 0, false }

func (PairConverter) ToModel(ctx ToModelContext) (any, error) {
	switch ctx.ItemTypes {
	case DayMonth:
		return Pair{First: ctx.Values.Day, Second: ctx.Values.Month}, nil
	case MonthYear:
		return Pair{First: ctx.Values.Month, Second: ctx.Values.Year}, nil
	default:
		return nil, fmt.Errorf("%w: pair converter got %s", ErrUnsupportedItemTypes, ctx.ItemTypes)
	}
}

func (PairConverter) FromModel(ctx FromModelContext) (ItemValues, bool, error) {
	p, ok := ctx.Model.(Pair)
	if !ok {
		return ItemValues{}, false, fmt.Errorf("dateinput: pair converter cannot decompose %T", ctx.Model)
	}
	switch ctx.ItemTypes {
	case DayMonth:
		if p.IsZero() {
			return ItemValues{}, false, nil
		}
		return ItemValues{Day: p.First, Month: p.Second}, true, nil
	case MonthYear:
		if p.IsZero() {
			return ItemValues{}, false, nil
		}
		return ItemValues{Month: p.First, Year: p.Second}, true, nil
	default:
		return ItemValues{}, false, fmt.Errorf("%w: pair converter got %s", ErrUnsupportedItemTypes, ctx.ItemTypes)
	}
}
