package dateinput_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-govuk/pkg/dateinput"
)

type birthday struct {
	Day   int
	Month int
}

type birthdayConverter struct{}

func (birthdayConverter) ItemTypes() (dateinput.ItemTypes, bool) { return dateinput.DayMonth, true }

func (birthdayConverter) ToModel(ctx dateinput.ToModelContext) (any, error) {
	return birthday{Day: ctx.Values.Day, Month: ctx.Values.Month}, nil
}

func (birthdayConverter) FromModel(ctx dateinput.FromModelContext) (dateinput.ItemValues, bool, error) {
	b := ctx.Model.(birthday)
	return dateinput.ItemValues{Day: b.Day, Month: b.Month}, true, nil
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := dateinput.NewRegistry()
	if err := dateinput.RegisterFor[birthday](registry, birthdayConverter{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := dateinput.RegisterFor[birthday](registry, birthdayConverter{})
	if !errors.Is(err, dateinput.ErrDuplicateConverter) {
		t.Fatalf("expected ErrDuplicateConverter, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustRegister to panic on duplicate")
		}
	}()
	registry.MustRegister(reflect.TypeOf(birthday{}), birthdayConverter{})
}

func TestRegistryRejectsPointerAndNil(t *testing.T) {
	registry := dateinput.NewRegistry()
	if err := registry.Register(reflect.TypeOf(&birthday{}), birthdayConverter{}); err == nil {
		t.Fatalf("expected pointer registration to fail")
	}
	if err := registry.Register(reflect.TypeOf(birthday{}), nil); err == nil {
		t.Fatalf("expected nil converter to fail")
	}
	if err := registry.Register(nil, birthdayConverter{}); err == nil {
		t.Fatalf("expected nil type to fail")
	}
}

func TestRegistryLookupResolvesPointers(t *testing.T) {
	registry := dateinput.DefaultRegistry()

	if !registry.Has(reflect.TypeOf(&dateinput.Date{})) {
		t.Fatalf("expected *Date to resolve")
	}
	if registry.Has(reflect.TypeOf("")) {
		t.Fatalf("string should not have a converter")
	}

	model, err := registry.ToModel(reflect.TypeOf((*time.Time)(nil)), dateinput.DayMonthYear, dateinput.ItemValues{Day: 2, Month: 1, Year: 2020})
	if err != nil {
		t.Fatalf("to model: %v", err)
	}
	ptr, ok := model.(*time.Time)
	if !ok || ptr == nil {
		t.Fatalf("expected *time.Time, got %T", model)
	}
	if !ptr.Equal(time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", ptr)
	}

	values, ok, err := registry.FromModel(ptr, dateinput.DayMonthYear)
	if err != nil || !ok {
		t.Fatalf("from model: ok=%v err=%v", ok, err)
	}
	if values != (dateinput.ItemValues{Day: 2, Month: 1, Year: 2020}) {
		t.Fatalf("unexpected values %+v", values)
	}
}

func TestRegistryResolveItemTypes(t *testing.T) {
	registry := dateinput.DefaultRegistry()
	if err := dateinput.RegisterFor[birthday](registry, birthdayConverter{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		typ      reflect.Type
		declared dateinput.ItemTypes
		want     dateinput.ItemTypes
	}{
		{reflect.TypeOf(birthday{}), 0, dateinput.DayMonth},
		{reflect.TypeOf(dateinput.Pair{}), 0, dateinput.DayMonthYear},
		{reflect.TypeOf(dateinput.Pair{}), dateinput.MonthYear, dateinput.MonthYear},
		{reflect.TypeOf(""), 0, dateinput.DayMonthYear},
	}
	for _, tc := range cases {
		if got := registry.ResolveItemTypes(tc.typ, tc.declared); got != tc.want {
			t.Fatalf("ResolveItemTypes(%s, %s) = %s, want %s", tc.typ, tc.declared, got, tc.want)
		}
	}
}

func TestRegistryList(t *testing.T) {
	got := dateinput.DefaultRegistry().List()
	want := []string{"dateinput.Date", "dateinput.Pair", "time.Time"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestNilRegistry(t *testing.T) {
	var r *dateinput.Registry
	if got := r.List(); got != nil {
		t.Fatalf("expected nil list, got %v", got)
	}
	if r.Has(reflect.TypeOf(dateinput.Date{})) {
		t.Fatalf("nil registry should have no converters")
	}
}

func TestIndependentRegistries(t *testing.T) {
	a := dateinput.NewRegistry()
	b := dateinput.NewRegistry()
	if err := dateinput.RegisterFor[birthday](a, birthdayConverter{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if b.Has(reflect.TypeOf(birthday{})) {
		t.Fatalf("registries should not share state")
	}
}
