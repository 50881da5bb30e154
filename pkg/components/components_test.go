package components_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-govuk/pkg/components"
	"github.com/goliatone/go-govuk/pkg/htmltag"
	"github.com/goliatone/go-govuk/pkg/testsupport"
)

func newGenerator(t *testing.T, options ...components.Option) *components.Generator {
	t.Helper()
	gen, err := components.New(options...)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	return gen
}

func TestErrorMessage(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.ErrorMessage(components.ErrorMessageOptions{
		Content: components.Content{Text: "Enter <your> name"},
		ID:      "name-error",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p id="name-error" class="govuk-error-message"><span class="govuk-visually-hidden">Error:</span> Enter &lt;your&gt; name</p>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}

	empty, err := gen.ErrorMessage(components.ErrorMessageOptions{ID: "x"})
	if err != nil || empty != "" {
		t.Fatalf("expected empty output, got %q (%v)", empty, err)
	}
}

func TestLabelAsPageHeading(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.Label(components.LabelOptions{
		Content:       components.Content{HTML: "<strong>Name</strong>"},
		For:           "name",
		IsPageHeading: true,
		Classes:       "govuk-label--l",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<h1 class="govuk-label-wrapper"><label class="govuk-label govuk-label--l" for="name"><strong>Name</strong></label></h1>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestLinkDefaults(t *testing.T) {
	gen := newGenerator(t)

	back, _ := gen.BackLink(components.BackLinkOptions{})
	if back != `<a href="#" class="govuk-back-link">Back</a>` {
		t.Fatalf("unexpected back link %s", back)
	}
	skip, _ := gen.SkipLink(components.SkipLinkOptions{})
	if skip != `<a href="#content" class="govuk-skip-link" data-module="govuk-skip-link">Skip to main content</a>` {
		t.Fatalf("unexpected skip link %s", skip)
	}
}

func TestInput(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.Input(components.InputOptions{
		Name:  "event-name",
		Label: &components.LabelOptions{Content: components.Content{Text: "What is the name of the event?"}},
		Hint:  &components.HintOptions{Content: components.Content{Text: "The name you'll use on promotional material"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `
<div class="govuk-form-group">
  <label class="govuk-label" for="event-name">What is the name of the event?</label>
  <div id="event-name-hint" class="govuk-hint">The name you&#39;ll use on promotional material</div>
  <input class="govuk-input" id="event-name" name="event-name" type="text" aria-describedby="event-name-hint">
</div>`
	testsupport.AssertHTML(t, want, got)
}

func TestInputErrorState(t *testing.T) {
	gen := newGenerator(t)

	spellcheck := false
	got, err := gen.Input(components.InputOptions{
		ID:           "cost",
		Name:         "cost",
		Value:        "12",
		Spellcheck:   &spellcheck,
		Hint:         &components.HintOptions{Content: components.Content{Text: "In pounds"}},
		ErrorMessage: &components.ErrorMessageOptions{Content: components.Content{Text: "Enter a cost"}},
		Prefix:       &components.AffixOptions{Content: components.Content{Text: "£"}},
		Attributes:   htmltag.Attrs("data-test", "cost"),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContainsHTML(t, got, `<div class="govuk-form-group govuk-form-group--error">`)
	testsupport.AssertContainsHTML(t, got, `<p id="cost-error" class="govuk-error-message">`)
	testsupport.AssertContainsHTML(t, got, `<div class="govuk-input__wrapper"><div class="govuk-input__prefix" aria-hidden="true">£</div>`)
	testsupport.AssertContainsHTML(t, got, `<input class="govuk-input govuk-input--error" id="cost" name="cost" type="text" spellcheck="false" value="12" aria-describedby="cost-hint cost-error" data-test="cost">`)
}

func TestDateInput(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.DateInput(components.DateInputOptions{
		ID:         "dob",
		NamePrefix: "dob",
		Fieldset: &components.FieldsetOptions{
			Legend: &components.LegendOptions{
				Content:       components.Content{Text: "What is your date of birth?"},
				Classes:       "govuk-fieldset__legend--l",
				IsPageHeading: true,
			},
		},
		Hint: &components.HintOptions{Content: components.Content{Text: "For example, 27 3 2007"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertContainsHTML(t, got, `<fieldset class="govuk-fieldset" role="group" aria-describedby="dob-hint">`)
	testsupport.AssertContainsHTML(t, got, `<legend class="govuk-fieldset__legend govuk-fieldset__legend--l"><h1 class="govuk-fieldset__heading">What is your date of birth?</h1></legend>`)
	testsupport.AssertContainsHTML(t, got, `<div id="dob-hint" class="govuk-hint">For example, 27 3 2007</div>`)
	testsupport.AssertContainsHTML(t, got, `<div class="govuk-date-input" id="dob">`)
	testsupport.AssertContainsHTML(t, got, `
<div class="govuk-date-input__item">
  <div class="govuk-form-group">
    <label class="govuk-label govuk-date-input__label" for="dob-day">Day</label>
    <input class="govuk-input govuk-date-input__input govuk-input--width-2" id="dob-day" name="dob-day" type="text" inputmode="numeric">
  </div>
</div>`)
	testsupport.AssertContainsHTML(t, got, `<input class="govuk-input govuk-date-input__input govuk-input--width-4" id="dob-year" name="dob-year" type="text" inputmode="numeric">`)
	if !strings.HasSuffix(testsupport.NormalizeHTML(got), "</fieldset></div>") {
		t.Fatalf("expected fieldset to close inside the form group: %s", got)
	}
}

func TestDateInputErrorItems(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.DateInput(components.DateInputOptions{
		ID:           "passport-issued",
		ErrorMessage: &components.ErrorMessageOptions{Content: components.Content{Text: "The date your passport was issued must include a year"}},
		Items: []components.DateInputItem{
			{Name: "day", Value: "5", Classes: "govuk-input--width-2"},
			{Name: "month", Value: "12", Classes: "govuk-input--width-2"},
			{Name: "year", Classes: "govuk-input--width-4 govuk-input--error"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContainsHTML(t, got, `<div class="govuk-form-group govuk-form-group--error">`)
	testsupport.AssertContainsHTML(t, got, `id="passport-issued-day" name="day" type="text" value="5" inputmode="numeric"`)
	testsupport.AssertContainsHTML(t, got, `<input class="govuk-input govuk-date-input__input govuk-input--width-4 govuk-input--error" id="passport-issued-year" name="year" type="text" inputmode="numeric">`)
	if strings.Contains(got, "<fieldset") {
		t.Fatalf("no fieldset expected without fieldset options")
	}
}

func TestCheckboxes(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.Checkboxes(components.CheckboxesOptions{
		Name: "waste",
		Fieldset: &components.FieldsetOptions{
			Legend: &components.LegendOptions{Content: components.Content{Text: "Which types of waste do you transport?"}},
		},
		Hint: &components.HintOptions{Content: components.Content{Text: "Select all that apply."}},
		Items: []components.ChoiceItem{
			{Content: components.Content{Text: "Rubble"}, Value: "rubble"},
			{Content: components.Content{Text: "Cables"}, Value: "cables", Conditional: &components.Content{Text: "Cable details"}},
			{Divider: "or"},
			{Content: components.Content{Text: "None"}, Value: "none", Behaviour: "exclusive"},
		},
		Values: []string{"rubble"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertContainsHTML(t, got, `<fieldset class="govuk-fieldset" aria-describedby="waste-hint">`)
	testsupport.AssertContainsHTML(t, got, `<div class="govuk-checkboxes" data-module="govuk-checkboxes">`)
	testsupport.AssertContainsHTML(t, got, `<input class="govuk-checkboxes__input" id="waste" name="waste" type="checkbox" value="rubble" checked>`)
	testsupport.AssertContainsHTML(t, got, `<label class="govuk-label govuk-checkboxes__label" for="waste">Rubble</label>`)
	testsupport.AssertContainsHTML(t, got, `<input class="govuk-checkboxes__input" id="waste-2" name="waste" type="checkbox" value="cables" data-aria-controls="conditional-waste-2">`)
	testsupport.AssertContainsHTML(t, got, `<div class="govuk-checkboxes__conditional govuk-checkboxes__conditional--hidden" id="conditional-waste-2">Cable details</div>`)
	testsupport.AssertContainsHTML(t, got, `<div class="govuk-checkboxes__divider">or</div>`)
	testsupport.AssertContainsHTML(t, got, `<input class="govuk-checkboxes__input" id="waste-4" name="waste" type="checkbox" value="none" data-behaviour="exclusive">`)
}

func TestRadiosWithoutFieldsetDescribeInputs(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.Radios(components.RadiosOptions{
		IDPrefix:     "contact",
		Name:         "contact",
		Value:        "email",
		ErrorMessage: &components.ErrorMessageOptions{Content: components.Content{Text: "Select how to contact you"}},
		Items: []components.ChoiceItem{
			{
				Content:     components.Content{Text: "Email"},
				Value:       "email",
				Hint:        &components.HintOptions{Content: components.Content{Text: "We reply within a day"}},
				Conditional: &components.Content{HTML: "<p>Email address</p>"},
			},
			{Content: components.Content{Text: "Phone"}, Value: "phone"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertContainsHTML(t, got, `<input class="govuk-radios__input" id="contact" name="contact" type="radio" value="email" checked data-aria-controls="conditional-contact" aria-describedby="contact-error contact-item-hint">`)
	testsupport.AssertContainsHTML(t, got, `<div id="contact-item-hint" class="govuk-hint govuk-radios__hint">We reply within a day</div>`)
	testsupport.AssertContainsHTML(t, got, `<div class="govuk-radios__conditional" id="conditional-contact"><p>Email address</p></div>`)
	testsupport.AssertContainsHTML(t, got, `<input class="govuk-radios__input" id="contact-2" name="contact" type="radio" value="phone" aria-describedby="contact-error">`)
}

func TestSelectMarksValue(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.Select(components.SelectOptions{
		Name:  "sort",
		Value: "updated",
		Label: &components.LabelOptions{Content: components.Content{Text: "Sort by"}},
		Items: []components.SelectItem{
			{Value: "published", Text: "Recently published"},
			{Value: "updated", Text: "Recently updated"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContainsHTML(t, got, `<select class="govuk-select" id="sort" name="sort"><option value="published">Recently published</option><option value="updated" selected>Recently updated</option></select>`)
}

func TestTextarea(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.Textarea(components.TextareaOptions{Name: "more-detail", Value: "a < b"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContainsHTML(t, got, `<textarea class="govuk-textarea" id="more-detail" name="more-detail" rows="5">a &lt; b</textarea>`)
}

func TestButton(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.Button(components.ButtonOptions{Content: components.Content{Text: "Save and continue"}, PreventDoubleClick: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertHTML(t, `<button type="submit" class="govuk-button" data-module="govuk-button" data-prevent-double-click="true">Save and continue</button>`, got)

	link, err := gen.Button(components.ButtonOptions{Content: components.Content{Text: "Start now"}, Href: "/start", IsStartButton: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContainsHTML(t, link, `<a href="/start" role="button" draggable="false" class="govuk-button govuk-button--start" data-module="govuk-button">Start now<svg class="govuk-button__start-icon"`)
}

func TestErrorSummary(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.ErrorSummary(components.ErrorSummaryOptions{
		ErrorList: []components.ErrorSummaryItem{
			{Content: components.Content{Text: "Date of birth must be a real date"}, Href: "#dob-day"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertHTML(t, `
<div class="govuk-error-summary" data-module="govuk-error-summary">
  <div role="alert">
    <h2 class="govuk-error-summary__title">There is a problem</h2>
    <div class="govuk-error-summary__body">
      <ul class="govuk-list govuk-error-summary__list">
        <li><a href="#dob-day">Date of birth must be a real date</a></li>
      </ul>
    </div>
  </div>
</div>`, got)
}

func TestTable(t *testing.T) {
	gen := newGenerator(t)

	got, err := gen.Table(components.TableOptions{
		Caption:           "Dates and amounts",
		FirstCellIsHeader: true,
		Head:              []components.TableCell{{Content: components.Content{Text: "Date"}}, {Content: components.Content{Text: "Amount"}, Format: "numeric"}},
		Rows: [][]components.TableCell{
			{{Content: components.Content{Text: "First 6 weeks"}}, {Content: components.Content{Text: "£109.80"}, Format: "numeric", Colspan: 2}},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContainsHTML(t, got, `<caption class="govuk-table__caption">Dates and amounts</caption>`)
	testsupport.AssertContainsHTML(t, got, `<th scope="col" class="govuk-table__header govuk-table__header--numeric">Amount</th>`)
	testsupport.AssertContainsHTML(t, got, `<tr class="govuk-table__row"><th scope="row" class="govuk-table__header">First 6 weeks</th><td class="govuk-table__cell govuk-table__cell--numeric" colspan="2">£109.80</td></tr>`)
}

func TestSmallComponents(t *testing.T) {
	gen := newGenerator(t)

	cases := []struct {
		name   string
		render func() (string, error)
		want   string
	}{
		{
			name: "tag",
			render: func() (string, error) {
				return gen.Tag(components.TagOptions{Content: components.Content{Text: "Completed"}, Classes: "govuk-tag--green"})
			},
			want: `<strong class="govuk-tag govuk-tag--green">Completed</strong>`,
		},
		{
			name: "inset text",
			render: func() (string, error) {
				return gen.InsetText(components.InsetTextOptions{Content: components.Content{Text: "It can take up to 8 weeks."}})
			},
			want: `<div class="govuk-inset-text">It can take up to 8 weeks.</div>`,
		},
		{
			name: "warning text",
			render: func() (string, error) {
				return gen.WarningText(components.WarningTextOptions{Content: components.Content{Text: "You can be fined."}})
			},
			want: `<div class="govuk-warning-text"><span class="govuk-warning-text__icon" aria-hidden="true">!</span><strong class="govuk-warning-text__text"><span class="govuk-visually-hidden">Warning</span>You can be fined.</strong></div>`,
		},
		{
			name: "panel",
			render: func() (string, error) {
				return gen.Panel(components.PanelOptions{TitleText: "Application complete", HeadingLevel: 2})
			},
			want: `<div class="govuk-panel govuk-panel--confirmation"><h2 class="govuk-panel__title">Application complete</h2></div>`,
		},
		{
			name: "details",
			render: func() (string, error) {
				return gen.Details(components.DetailsOptions{SummaryText: "Help", Content: components.Content{Text: "Call us"}, Open: true})
			},
			want: `<details class="govuk-details" open><summary class="govuk-details__summary"><span class="govuk-details__summary-text">Help</span></summary><div class="govuk-details__text">Call us</div></details>`,
		},
		{
			name: "phase banner",
			render: func() (string, error) {
				return gen.PhaseBanner(components.PhaseBannerOptions{
					Tag:     components.TagOptions{Content: components.Content{Text: "Beta"}},
					Content: components.Content{HTML: `This is a new service.`},
				})
			},
			want: `<div class="govuk-phase-banner"><p class="govuk-phase-banner__content"><strong class="govuk-tag govuk-phase-banner__content__tag">Beta</strong><span class="govuk-phase-banner__text">This is a new service.</span></p></div>`,
		},
		{
			name: "breadcrumbs",
			render: func() (string, error) {
				return gen.Breadcrumbs(components.BreadcrumbsOptions{Items: []components.BreadcrumbItem{
					{Content: components.Content{Text: "Home"}, Href: "/"},
					{Content: components.Content{Text: "Passports"}},
				}})
			},
			want: `<nav class="govuk-breadcrumbs" aria-label="Breadcrumb"><ol class="govuk-breadcrumbs__list"><li class="govuk-breadcrumbs__list-item"><a class="govuk-breadcrumbs__link" href="/">Home</a></li><li class="govuk-breadcrumbs__list-item" aria-current="page">Passports</li></ol></nav>`,
		},
		{
			name: "fieldset",
			render: func() (string, error) {
				return gen.Fieldset(components.FieldsetOptions{
					Legend:  &components.LegendOptions{Content: components.Content{Text: "Address"}},
					Content: components.Content{HTML: "<p>Fields</p>"},
				})
			},
			want: `<fieldset class="govuk-fieldset"><legend class="govuk-fieldset__legend">Address</legend><p>Fields</p></fieldset>`,
		},
		{
			name: "file upload",
			render: func() (string, error) {
				return gen.FileUpload(components.FileUploadOptions{Name: "photo", Label: &components.LabelOptions{Content: components.Content{Text: "Upload a photo"}}})
			},
			want: `<div class="govuk-form-group"><label class="govuk-label" for="photo">Upload a photo</label><input class="govuk-file-upload" id="photo" name="photo" type="file"></div>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.render()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			testsupport.AssertHTML(t, tc.want, got)
		})
	}
}
