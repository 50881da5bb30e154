package govuk_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	govuk "github.com/goliatone/go-govuk"
	"github.com/goliatone/go-govuk/pkg/binding"
	"github.com/goliatone/go-govuk/pkg/components"
	"github.com/goliatone/go-govuk/pkg/dateinput"
	"github.com/goliatone/go-govuk/pkg/htmltag"
	"github.com/goliatone/go-govuk/pkg/testsupport"
)

var dobField = binding.Field{Name: "dob", DisplayName: "Date of birth"}

func TestDateInputFieldAfterFailedBind(t *testing.T) {
	binder := govuk.NewBinder(govuk.DefaultConfig())
	state := binding.NewModelState()

	_, outcome, err := binding.Bind[dateinput.Date](binder, binding.MapValues{
		"dob.Day":   "31",
		"dob.Month": "feb",
		"dob.Year":  "2020",
	}, dobField, state)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if outcome != binding.OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", outcome)
	}

	opts, err := govuk.DateInputField(binder, dobField, dateinput.Date{}, state, components.DateInputOptions{})
	if err != nil {
		t.Fatalf("date input field: %v", err)
	}

	want := []components.DateInputItem{
		{ID: "dob-day", Name: "dob.Day", Label: "Day", Value: "31", Classes: "govuk-input--width-2 govuk-input--error"},
		{ID: "dob-month", Name: "dob.Month", Label: "Month", Value: "feb", Classes: "govuk-input--width-2"},
		{ID: "dob-year", Name: "dob.Year", Label: "Year", Value: "2020", Classes: "govuk-input--width-4"},
	}
	if diff := cmp.Diff(want, opts.Items, cmp.AllowUnexported(htmltag.Attributes{})); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if opts.ErrorMessage == nil || opts.ErrorMessage.Text != "Date of birth must be a real date" {
		t.Fatalf("unexpected error message %+v", opts.ErrorMessage)
	}
	if got := govuk.FirstErrorItemID(opts); got != "dob-day" {
		t.Fatalf("unexpected first error item %q", got)
	}
}

func TestDateInputFieldFromModel(t *testing.T) {
	binder := govuk.NewBinder(govuk.DefaultConfig())
	model := time.Date(2021, time.March, 14, 0, 0, 0, 0, time.UTC)

	opts, err := govuk.DateInputField(binder, dobField, &model, binding.NewModelState(), components.DateInputOptions{ID: "birth"})
	if err != nil {
		t.Fatalf("date input field: %v", err)
	}
	values := []string{opts.Items[0].Value, opts.Items[1].Value, opts.Items[2].Value}
	if diff := cmp.Diff([]string{"14", "3", "2021"}, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if opts.Items[0].ID != "birth-day" {
		t.Fatalf("expected ids from base id, got %q", opts.Items[0].ID)
	}
	if opts.ErrorMessage != nil {
		t.Fatalf("no error message expected")
	}

	var missing *time.Time
	opts, err = govuk.DateInputField(binder, dobField, missing, nil, components.DateInputOptions{})
	if err != nil {
		t.Fatalf("date input field: %v", err)
	}
	for _, item := range opts.Items {
		if item.Value != "" {
			t.Fatalf("expected empty boxes for nil model, got %+v", item)
		}
	}
}

func TestDateInputFieldPartialDate(t *testing.T) {
	binder := govuk.NewBinder(govuk.DefaultConfig())
	field := binding.Field{Name: "expiry", DisplayName: "Expiry date", ItemTypes: dateinput.MonthYear}

	opts, err := govuk.DateInputField(binder, field, dateinput.Pair{First: 9, Second: 2027}, nil, components.DateInputOptions{})
	if err != nil {
		t.Fatalf("date input field: %v", err)
	}
	want := []components.DateInputItem{
		{ID: "expiry-month", Name: "expiry.Month", Label: "Month", Value: "9", Classes: "govuk-input--width-2"},
		{ID: "expiry-year", Name: "expiry.Year", Label: "Year", Value: "2027", Classes: "govuk-input--width-4"},
	}
	if diff := cmp.Diff(want, opts.Items, cmp.AllowUnexported(htmltag.Attributes{})); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestDateInputFieldGeneralErrorFlagsEveryBox(t *testing.T) {
	binder := govuk.NewBinder(govuk.DefaultConfig())
	state := binding.NewModelState()
	state.AddError("dob", "Date of birth must be in the past")

	opts, err := govuk.DateInputField(binder, dobField, dateinput.Date{}, state, components.DateInputOptions{
		ErrorMessage: &components.ErrorMessageOptions{Content: components.Content{Text: "Custom"}},
	})
	if err != nil {
		t.Fatalf("date input field: %v", err)
	}
	for _, item := range opts.Items {
		if !strings.HasSuffix(item.Classes, "govuk-input--error") {
			t.Fatalf("expected every box flagged, got %+v", item)
		}
	}
	if opts.ErrorMessage.Text != "Custom" {
		t.Fatalf("caller error message should win, got %q", opts.ErrorMessage.Text)
	}
}

func TestDateInputFieldRenders(t *testing.T) {
	gen, err := govuk.NewGenerator(govuk.DefaultConfig())
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	binder := govuk.NewBinder(govuk.DefaultConfig())
	state := binding.NewModelState()
	if _, _, err := binding.Bind[dateinput.Date](binder, binding.MapValues{"dob.Day": "12", "dob.Year": "1990"}, dobField, state); err != nil {
		t.Fatalf("bind: %v", err)
	}

	opts, err := govuk.DateInputField(binder, dobField, dateinput.Date{}, state, components.DateInputOptions{
		Fieldset: &components.FieldsetOptions{Legend: &components.LegendOptions{Content: components.Content{Text: "Date of birth"}}},
	})
	if err != nil {
		t.Fatalf("date input field: %v", err)
	}
	markup, err := gen.DateInput(opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertContainsHTML(t, markup, `<fieldset class="govuk-fieldset" role="group" aria-describedby="dob-error">`)
	testsupport.AssertContainsHTML(t, markup, `<p id="dob-error" class="govuk-error-message"><span class="govuk-visually-hidden">Error:</span> Date of birth must include a month</p>`)
	testsupport.AssertContainsHTML(t, markup, `<input class="govuk-input govuk-date-input__input govuk-input--width-2" id="dob-day" name="dob.Day" type="text" value="12" inputmode="numeric">`)
	testsupport.AssertContainsHTML(t, markup, `<input class="govuk-input govuk-date-input__input govuk-input--width-2 govuk-input--error" id="dob-month" name="dob.Month" type="text" inputmode="numeric">`)
}

func TestErrorSummaryFromState(t *testing.T) {
	state := binding.NewModelState()
	state.AddError("name", "Enter your name")
	state.AddError("dob", "Date of birth must be a real date")

	opts := govuk.ErrorSummary(state, func(key string) string {
		if key == "dob" {
			return "#dob-day"
		}
		return "#" + key
	})
	want := []components.ErrorSummaryItem{
		{Content: components.Content{Text: "Date of birth must be a real date"}, Href: "#dob-day"},
		{Content: components.Content{Text: "Enter your name"}, Href: "#name"},
	}
	if diff := cmp.Diff(want, opts.ErrorList, cmp.AllowUnexported(htmltag.Attributes{})); diff != "" {
		t.Fatalf("error list mismatch (-want +got):\n%s", diff)
	}
}
