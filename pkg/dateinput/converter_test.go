package dateinput_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-govuk/pkg/dateinput"
)

func TestConvertersRoundTrip(t *testing.T) {
	registry := dateinput.DefaultRegistry()

	cases := []struct {
		name  string
		typ   reflect.Type
		items dateinput.ItemTypes
		in    dateinput.ItemValues
		model any
	}{
		{
			name:  "date",
			typ:   reflect.TypeOf(dateinput.Date{}),
			items: dateinput.DayMonthYear,
			in:    dateinput.ItemValues{Day: 29, Month: 2, Year: 2000},
			model: dateinput.Date{Year: 2000, Month: time.February, Day: 29},
		},
		{
			name:  "time",
			typ:   reflect.TypeOf(time.Time{}),
			items: dateinput.DayMonthYear,
			in:    dateinput.ItemValues{Day: 1, Month: 12, Year: 1999},
			model: time.Date(1999, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "pair day month",
			typ:   reflect.TypeOf(dateinput.Pair{}),
			items: dateinput.DayMonth,
			in:    dateinput.ItemValues{Day: 14, Month: 7},
			model: dateinput.Pair{First: 14, Second: 7},
		},
		{
			name:  "pair month year",
			typ:   reflect.TypeOf(dateinput.Pair{}),
			items: dateinput.MonthYear,
			in:    dateinput.ItemValues{Month: 3, Year: 2031},
			model: dateinput.Pair{First: 3, Second: 2031},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := registry.ToModel(tc.typ, tc.items, tc.in)
			if err != nil {
				t.Fatalf("to model: %v", err)
			}
			if diff := cmp.Diff(tc.model, model); diff != "" {
				t.Fatalf("model mismatch (-want +got):\n%s", diff)
			}

			back, ok, err := registry.FromModel(model, tc.items)
			if err != nil {
				t.Fatalf("from model: %v", err)
			}
			if !ok {
				t.Fatalf("expected values from model")
			}
			if diff := cmp.Diff(tc.in, back); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFixedConverterRejectsOtherItemTypes(t *testing.T) {
	_, err := dateinput.DateConverter{}.ToModel(dateinput.ToModelContext{
		ItemTypes: dateinput.MonthYear,
		Values:    dateinput.ItemValues{Month: 1, Year: 2000},
	})
	if !errors.Is(err, dateinput.ErrUnsupportedItemTypes) {
		t.Fatalf("expected ErrUnsupportedItemTypes, got %v", err)
	}

	_, _, err = dateinput.TimeConverter{}.FromModel(dateinput.FromModelContext{
		ItemTypes: dateinput.DayMonth,
		Model:     time.Now(),
	})
	if !errors.Is(err, dateinput.ErrUnsupportedItemTypes) {
		t.Fatalf("expected ErrUnsupportedItemTypes, got %v", err)
	}

	_, err = dateinput.PairConverter{}.ToModel(dateinput.ToModelContext{ItemTypes: dateinput.DayMonthYear})
	if !errors.Is(err, dateinput.ErrUnsupportedItemTypes) {
		t.Fatalf("expected ErrUnsupportedItemTypes, got %v", err)
	}
}

func TestFromModelWithoutValue(t *testing.T) {
	registry := dateinput.DefaultRegistry()

	var nilDate *dateinput.Date
	models := []any{nil, nilDate, dateinput.Date{}, time.Time{}}
	for _, model := range models {
		_, ok, err := registry.FromModel(model, dateinput.DayMonthYear)
		if err != nil {
			t.Fatalf("from model %#v: %v", model, err)
		}
		if ok {
			t.Fatalf("expected no value for %#v", model)
		}
	}

	_, ok, err := registry.FromModel(dateinput.Pair{}, dateinput.MonthYear)
	if err != nil || ok {
		t.Fatalf("expected no value for zero pair, ok=%v err=%v", ok, err)
	}
}

func TestTimeConverterUsesCalendarDateOfLocation(t *testing.T) {
	loc := time.FixedZone("east", 10*60*60)
	model := time.Date(2024, time.March, 1, 1, 30, 0, 0, loc)

	values, ok, err := dateinput.TimeConverter{}.FromModel(dateinput.FromModelContext{
		ItemTypes: dateinput.DayMonthYear,
		Model:     model,
	})
	if err != nil || !ok {
		t.Fatalf("from model: ok=%v err=%v", ok, err)
	}
	if values != (dateinput.ItemValues{Day: 1, Month: 3, Year: 2024}) {
		t.Fatalf("unexpected values %+v", values)
	}
}

func TestDateHelpers(t *testing.T) {
	d := dateinput.DateOf(time.Date(2021, time.June, 9, 23, 0, 0, 0, time.UTC))
	if d.String() != "2021-06-09" {
		t.Fatalf("unexpected string %q", d.String())
	}
	if !d.Time(nil).Equal(time.Date(2021, time.June, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", d.Time(nil))
	}
	if d.IsZero() || !(dateinput.Date{}).IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}
